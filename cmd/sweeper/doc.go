// Package sweeper implements the sweeper command-line interface: the scan
// and scan-network commands plus the remediation (--fix/--dry-run) flow.
package sweeper
