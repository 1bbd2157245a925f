package urlcheck

// MapVerdict turns a reputation answer into a verdict. Unrecognised statuses
// always land in an unknown row, never in an error.
func MapVerdict(qr QueryResult) Result {
	switch qr.QueryStatus {
	case QueryStatusNoResults:
		return Result{
			Verdict:     VerdictSafe,
			Explanation: "URL not found in the URLhaus malware database",
			Details:     qr.Raw,
		}
	case QueryStatusOK:
		switch qr.URLStatus {
		case URLStatusOnline:
			return Result{
				Verdict:     VerdictMalicious,
				Explanation: "URL is active and flagged as malicious by URLhaus",
				Details:     qr.Raw,
			}
		case URLStatusOffline:
			return Result{
				Verdict:     VerdictSuspicious,
				Explanation: "URL was previously flagged as malicious but is now offline",
				Details:     qr.Raw,
			}
		default:
			return Result{
				Verdict:     VerdictUnknown,
				Explanation: "URLhaus reported URL status: " + qr.URLStatus,
				Details:     qr.Raw,
			}
		}
	default:
		return Result{
			Verdict:     VerdictUnknown,
			Explanation: "URLhaus query status: " + qr.QueryStatus,
			Details:     qr.Raw,
		}
	}
}
