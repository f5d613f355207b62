package usecase

// Export unexported functions for testing
var (
	CreateOrUpdateBigQueryTableForTest = createOrUpdateBigQueryTable
	LoadIssueTemplatesForTest          = loadIssueTemplates
)
