package server

var (
	GitHubEventToRepositoryEventForTest = githubEventToRepositoryEvent
	StatusCodeForTest                   = statusCode
)
