//go:build scoresdebug

package scores

const checkOrdering = true
