package reporting

import (
	"errors"
	"testing"

	"osiris-dashboard/internal/dashboard"
)

func TestROI_MockSnapshot(t *testing.T) {
	out := ROI(dashboard.MockData())

	if out.TotalRevenue != 57840 || out.BookedJobs != 20 || out.CompletedJobs != 16 {
		t.Fatalf("unexpected totals: %+v", out)
	}
	if out.PlatformCost != 300 || out.NetGain != 57540 {
		t.Fatalf("unexpected cost/net: %v/%v", out.PlatformCost, out.NetGain)
	}
	if out.Multiplier != 192 {
		t.Fatalf("expected multiplier 192, got %v", out.Multiplier)
	}
	if out.TimeSavedHours != 15 {
		t.Fatalf("expected 15 hours saved, got %v", out.TimeSavedHours)
	}
	if out.CloseRate != 74 {
		t.Fatalf("expected close rate 74, got %v", out.CloseRate)
	}
	if len(out.RecentActivity) != 3 || out.RecentActivity[0].ID != "j20" || out.RecentActivity[2].ID != "j18" {
		t.Fatalf("unexpected recent activity: %+v", out.RecentActivity)
	}
	if out.IsLiveData {
		t.Fatalf("expected mock flag carried through")
	}
}

func TestROI_EmptySnapshotHasNoDivisionByZero(t *testing.T) {
	out := ROI(dashboard.Data{IsLiveData: true})
	if out.Multiplier != 0 || out.CloseRate != 0 || out.TimeSavedHours != 0 {
		t.Fatalf("expected zero ratios, got %+v", out)
	}
	if out.RecentActivity == nil || len(out.RecentActivity) != 0 {
		t.Fatalf("expected empty, non-nil recent activity")
	}
}

func TestTimeSavedHours_Rounds(t *testing.T) {
	jobs := []dashboard.Job{{Booked: true}, {Booked: true}, {Booked: false}}
	// 2 * 45 = 90 minutes
	if got := TimeSavedHours(jobs); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
}

func TestClient_AggregatesByPhone(t *testing.T) {
	out, err := Client(dashboard.MockData(), "4245559876")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Name != "Sarah Kim" || len(out.Jobs) != 2 || len(out.Calls) != 2 {
		t.Fatalf("unexpected client: %+v", out)
	}
	if out.Revenue != 3300 || out.PaidRevenue != 1650 {
		t.Fatalf("unexpected revenue %v/%v", out.Revenue, out.PaidRevenue)
	}
	if out.Invoices != 2 || out.Payments != 1 || out.Reviews != 1 {
		t.Fatalf("unexpected counts: invoices=%d payments=%d reviews=%d", out.Invoices, out.Payments, out.Reviews)
	}
	if out.Profile == nil || out.Profile.PhoneNumber != "4245559876" {
		t.Fatalf("expected profile attached")
	}
}

func TestClient_NotFound(t *testing.T) {
	for _, phone := range []string{"", "  ", "0000000000"} {
		if _, err := Client(dashboard.MockData(), phone); !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("phone %q: expected ErrClientNotFound, got %v", phone, err)
		}
	}
}

func TestJobsByDate(t *testing.T) {
	jobs := dashboard.MockData().Jobs
	if got := JobsByDate(jobs, "2025-12-02"); len(got) != 1 || got[0].ID != "j1" {
		t.Fatalf("unexpected jobs: %+v", got)
	}
	if got := JobsByDate(jobs, "1999-01-01"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty, non-nil result")
	}
}

func TestSortJobsByDateDesc_CopiesAndKeepsTies(t *testing.T) {
	in := []dashboard.Job{
		{ID: "a", Date: "2026-01-01"},
		{ID: "b", Date: "2026-01-03"},
		{ID: "c", Date: "2026-01-01"},
	}
	out := SortJobsByDateDesc(in)
	if out[0].ID != "b" || out[1].ID != "a" || out[2].ID != "c" {
		t.Fatalf("unexpected order: %v %v %v", out[0].ID, out[1].ID, out[2].ID)
	}
	if in[0].ID != "a" || in[1].ID != "b" {
		t.Fatalf("input must not be reordered")
	}
}

func TestROI_NegativeNetGainRoundsHalfAwayFromZero(t *testing.T) {
	// revenue 15, cost 2*15 = 30, net -15, ratio -0.5
	data := dashboard.Data{Jobs: []dashboard.Job{
		{Booked: true, Price: 7.5},
		{Booked: true, Price: 7.5},
	}}
	out := ROI(data)
	if out.NetGain != -15 || out.Multiplier != -1 {
		t.Fatalf("expected net -15 and multiplier -1, got %v/%v", out.NetGain, out.Multiplier)
	}
}
