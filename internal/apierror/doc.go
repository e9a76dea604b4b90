// Package apierror classifies errors returned by the Google Sheets API, the
// OAuth2 token endpoint and the GitHub GraphQL API. It centralizes the
// status-code and message inspection so the clients only map a class of
// failure to one of prsheet's error kinds.
package apierror
