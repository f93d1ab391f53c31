// Package e2e holds the endpoint suites of the product catalog. They run
// against CATALOG_BASE_URL (or the base URL registered for CATALOG_ENV) when
// either is set, and against the in-process stand-in otherwise:
//
//	CATALOG_BASE_URL=https://dummyjson.com go test ./e2e/...
package e2e
