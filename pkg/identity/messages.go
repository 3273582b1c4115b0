package identity

const (
	failedToVerifyToken   = "failed-to-verify-token"
	failedToVerifyIDToken = "failed-to-verify-id-token"
	failedToFindUser      = "failed-to-find-user"
	missingEmailClaim     = "missing-email-claim"
	unverifiedEmail       = "unverified-email"
)
