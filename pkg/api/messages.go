package api

const (
	starting = "starting"
	finished = "finished"
	success  = "success"

	internal = "internal"

	failedToDecide         = "failed-to-decide"
	failedToEncodeResponse = "failed-to-encode-response"
	failedToHashPassword   = "failed-to-hash-password"
	failedToIssueToken     = "failed-to-issue-token"
	failedToResolveActor   = "failed-to-resolve-actor"
	failedToServe          = "failed-to-serve"
	requestFailed          = "request-failed"
)
