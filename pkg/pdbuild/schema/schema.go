// Package schema enumerates the fixed table registry of the database. The
// same ordered name list drives the loader, the merger, and the exporter, so
// no stage infers the table set from whichever collection it happens to hold.
package schema

// Registry table names. Each name is also the sheet name expected in both
// source workbooks.
const (
	MetadataTable               = "Metadata"
	StateVariablesTable         = "StateVariables"
	ContinuousDomainsTable      = "ContinuousDomains"
	IntegrationRulesTable       = "IntegrationRules"
	StateVectorsTable           = "StateVectors"
	IpmKernelsTable             = "IpmKernels"
	VitalRateExprTable          = "VitalRateExpr"
	ParameterValuesTable        = "ParameterValues"
	EnvironmentalVariablesTable = "EnvironmentalVariables"
	HierarchTable               = "HierarchTable"
	UncertaintyTable            = "UncertaintyTable"
	TestTargetsTable            = "TestTargets"
)

// ParSetIndicesName is the external file name for HierarchTable. The table
// keeps its internal name in memory; only the exported file is renamed.
const ParSetIndicesName = "ParSetIndices"

// CheckedColumn is the validation-status flag column of the metadata table.
// Only the primary source tracks it natively; the secondary source's metadata
// gets it added, initialized to missing, before the merge.
const CheckedColumn = "checked"

var registry = []string{
	MetadataTable,
	StateVariablesTable,
	ContinuousDomainsTable,
	IntegrationRulesTable,
	StateVectorsTable,
	IpmKernelsTable,
	VitalRateExprTable,
	ParameterValuesTable,
	EnvironmentalVariablesTable,
	HierarchTable,
	UncertaintyTable,
	TestTargetsTable,
}

// Names returns the ordered table registry. Callers receive a fresh slice.
func Names() []string {
	return append([]string(nil), registry...)
}

// ExportName returns the file base name (without extension) a table is
// written under. Every table exports under its own name except HierarchTable.
func ExportName(table string) string {
	if table == HierarchTable {
		return ParSetIndicesName
	}
	return table
}
