/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tdf

// SkipReason explains why a player record was not imported.
type SkipReason string

const (
	// SkipInvalidData: the record has no external user id and can never
	// be reconciled to an account.
	SkipInvalidData SkipReason = "invalid_data"
	// SkipNoAccount: no internal account is registered under the
	// record's external user id.
	SkipNoAccount SkipReason = "no_account"
)

// Account is the projection of an internal user account offered to the
// reconciliation step, keyed in the lookup table by external user id.
type Account struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"displayName"`
}

// ImportedPlayer binds an external player record to the internal
// account it reconciled to.
type ImportedPlayer struct {
	Record    PlayerRecord `json:"record"`
	AccountID int64        `json:"accountId"`
}

// SkippedPlayer retains enough of the original record for the caller to
// present an actionable message.
type SkippedPlayer struct {
	Record PlayerRecord `json:"record"`
	Reason SkipReason   `json:"reason"`
}

// ImportReport partitions a document's player records into imported and
// skipped. ImportedCount+SkippedCount always equals Total.
type ImportReport struct {
	Total         int              `json:"total"`
	ImportedCount int              `json:"importedCount"`
	SkippedCount  int              `json:"skippedCount"`
	Imported      []ImportedPlayer `json:"imported"`
	Skipped       []SkippedPlayer  `json:"skipped"`
}

// ReconcilePlayers classifies each external player record against the
// account lookup table. It is a pure function: creating participant
// rows from the imported partition is the caller's side effect, not
// ours.
func ReconcilePlayers(records []PlayerRecord,
	accounts map[UserID]Account) ImportReport {

	report := ImportReport{Total: len(records)}
	for _, rec := range records {
		if rec.UserID == "" {
			report.Skipped = append(report.Skipped, SkippedPlayer{
				Record: rec,
				Reason: SkipInvalidData,
			})
			continue
		}
		account, ok := accounts[rec.UserID]
		if !ok {
			report.Skipped = append(report.Skipped, SkippedPlayer{
				Record: rec,
				Reason: SkipNoAccount,
			})
			continue
		}
		report.Imported = append(report.Imported, ImportedPlayer{
			Record:    rec,
			AccountID: account.ID,
		})
	}

	report.ImportedCount = len(report.Imported)
	report.SkippedCount = len(report.Skipped)

	return report
}
