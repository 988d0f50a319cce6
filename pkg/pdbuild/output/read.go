package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/padrinoDB/pdbuild/pkg/pdbuild/models"
)

// ReadTable parses one exported table file back into a table. The table name
// is taken from the file base name, so HierarchTable reads back under its
// external name. Fields are unquoted, the missing token maps back to the
// missing value, and everything else goes through the shared classifier.
func ReadTable(fsys billy.Filesystem, path string) (models.Table, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return models.Table{}, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return models.Table{}, fmt.Errorf("read %q: %w", path, err)
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return models.Table{}, fmt.Errorf("%q: no header line", path)
	}

	header, err := parseLine(lines[0])
	if err != nil {
		return models.Table{}, fmt.Errorf("%q header: %w", path, err)
	}

	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	t := models.Table{
		Name:    strings.TrimSuffix(base, ".txt"),
		Columns: header,
		Rows:    make([][]models.Value, 0, len(lines)-1),
	}
	for n, line := range lines[1:] {
		fields, err := parseLine(line)
		if err != nil {
			return models.Table{}, fmt.Errorf("%q line %d: %w", path, n+2, err)
		}
		if len(fields) != len(header) {
			return models.Table{}, fmt.Errorf("%q line %d: %d fields, header has %d", path, n+2, len(fields), len(header))
		}
		row := make([]models.Value, len(fields))
		for j, field := range fields {
			if field == models.MissingToken {
				row[j] = models.Missing()
			} else {
				row[j] = models.Classify(field)
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// ReadDir reads every .txt file in dir, sorted by file name.
func ReadDir(fsys billy.Filesystem, dir string) ([]models.Table, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %q: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		paths = append(paths, fsys.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	tables := make([]models.Table, 0, len(paths))
	for _, p := range paths {
		t, err := ReadTable(fsys, p)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// parseLine splits one exported line into unquoted fields. Every field must
// be quoted; embedded quotes arrive doubled.
func parseLine(line string) ([]string, error) {
	var fields []string
	i := 0
	for {
		if i >= len(line) || line[i] != '"' {
			return nil, fmt.Errorf("expected opening quote at byte %d", i)
		}
		i++
		var sb strings.Builder
		for {
			if i >= len(line) {
				return nil, fmt.Errorf("unterminated quoted field")
			}
			if line[i] == '"' {
				if i+1 < len(line) && line[i+1] == '"' {
					sb.WriteByte('"')
					i += 2
					continue
				}
				i++
				break
			}
			sb.WriteByte(line[i])
			i++
		}
		fields = append(fields, sb.String())
		if i == len(line) {
			return fields, nil
		}
		if line[i] != '\t' {
			return nil, fmt.Errorf("expected tab after field at byte %d", i)
		}
		i++
	}
}
