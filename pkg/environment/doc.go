// Package environment identifies the deployment environment the process runs
// in and answers the one question the rest of the application asks: is this a
// development deployment?
//
// The answer gates development-only surface such as pprof and metrics routes,
// which the authorization policy opens up only when Parse reports a
// development environment. Common short aliases ("dev", "local", "prod",
// "stage") are recognised so the ENVIRONMENT variable stays forgiving across
// deployments.
package environment
