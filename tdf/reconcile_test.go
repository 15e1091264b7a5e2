/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tdf

import (
	"testing"
)

func TestReconcilePlayers(t *testing.T) {
	records := []PlayerRecord{
		{UserID: "5001234", FirstName: "Avery", LastName: "Chen"},
		{UserID: "9999999", FirstName: "Blake", LastName: "Ito"},
		{UserID: "", FirstName: "Casey", LastName: "Morgan"},
		{UserID: "5003456", FirstName: "Devon", LastName: "Park"},
	}
	accounts := map[UserID]Account{
		"5001234": {ID: 42, DisplayName: "Avery C."},
		"5003456": {ID: 77, DisplayName: "Devon P."},
	}

	report := ReconcilePlayers(records, accounts)

	if report.Total != 4 {
		t.Fatalf("expected total 4, got %d", report.Total)
	}
	if report.ImportedCount+report.SkippedCount != report.Total {
		t.Fatalf("partition does not cover all records: %+v", report)
	}
	if report.ImportedCount != 2 || report.SkippedCount != 2 {
		t.Fatalf("expected 2 imported and 2 skipped, got %+v", report)
	}

	if report.Imported[0].Record.UserID != "5001234" ||
		report.Imported[0].AccountID != 42 {
		t.Errorf("unexpected first import: %+v", report.Imported[0])
	}
	if report.Imported[1].Record.UserID != "5003456" ||
		report.Imported[1].AccountID != 77 {
		t.Errorf("unexpected second import: %+v", report.Imported[1])
	}

	// no matching account
	if report.Skipped[0].Record.UserID != "9999999" ||
		report.Skipped[0].Reason != SkipNoAccount {
		t.Errorf("unexpected first skip: %+v", report.Skipped[0])
	}
	// record can never reconcile without an external id
	if report.Skipped[1].Record.FirstName != "Casey" ||
		report.Skipped[1].Reason != SkipInvalidData {
		t.Errorf("unexpected second skip: %+v", report.Skipped[1])
	}
}

func TestReconcilePlayersEmpty(t *testing.T) {
	report := ReconcilePlayers(nil, map[UserID]Account{
		"5001234": {ID: 42},
	})
	if report.Total != 0 || report.ImportedCount != 0 ||
		report.SkippedCount != 0 {
		t.Errorf("expected empty report, got %+v", report)
	}

	// a nil account table skips everyone rather than panicking
	report = ReconcilePlayers([]PlayerRecord{{UserID: "5001234"}}, nil)
	if report.ImportedCount != 0 || report.SkippedCount != 1 {
		t.Errorf("expected single no_account skip, got %+v", report)
	}
	if report.Skipped[0].Reason != SkipNoAccount {
		t.Errorf("expected no_account reason, got %v", report.Skipped[0].Reason)
	}
}
