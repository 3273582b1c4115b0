package flags

const (
	failedToParseTLSCredentials = "failed-to-parse-tls-credentials"
	failedToOpenSQLConnection   = "failed-to-open-sql-connection"
	failedToReadFile            = "failed-to-read-file"
	failedToConnectToStatsD     = "failed-to-connect-to-statsd"
	failedToOpenAuditLog        = "failed-to-open-audit-log"
	failedToCreateOIDCResolver  = "failed-to-create-oidc-resolver"
)
