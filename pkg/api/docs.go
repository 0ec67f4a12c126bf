// Package api provides the control REST API of RangeIndexor
// @title RangeIndexor API
// @version 1.0
// @description Control API for pausing, resuming and reindexing strategy block ranges
// @contact.name API Support
// @contact.url https://github.com/goran-ethernal/RangeIndexor
// @license.name Apache 2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:3000
// @basePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package api
