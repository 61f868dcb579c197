package dashboard

import (
	"encoding/json"
	"testing"
)

func TestMockData_CountersMatchJobs(t *testing.T) {
	d := MockData()

	booked, paid := 0, 0
	for _, j := range d.Jobs {
		if j.Booked {
			booked++
		}
		if j.Paid {
			paid++
		}
	}
	if d.JobsBooked != booked {
		t.Fatalf("jobsBooked %d != booked jobs %d", d.JobsBooked, booked)
	}
	if d.CleanersScheduled != paid {
		t.Fatalf("cleanersScheduled %d != paid jobs %d", d.CleanersScheduled, paid)
	}
	if d.QuotesSent != len(d.Jobs)+3 {
		t.Fatalf("expected quotesSent = jobs + 3, got %d", d.QuotesSent)
	}
	if d.CallsAnswered != len(d.Calls)+15 {
		t.Fatalf("expected callsAnswered = calls + 15, got %d", d.CallsAnswered)
	}
	if d.IsLiveData {
		t.Fatalf("mock data must not be flagged live")
	}
}

func TestMockData_Catalog(t *testing.T) {
	d := MockData()
	if len(d.Jobs) != 20 || len(d.Calls) != 12 || len(d.Profiles) != 6 {
		t.Fatalf("unexpected catalog sizes jobs=%d calls=%d profiles=%d", len(d.Jobs), len(d.Calls), len(d.Profiles))
	}
	if d.JobsBooked != 20 || d.CleanersScheduled != 16 || d.QuotesSent != 23 || d.CallsAnswered != 27 {
		t.Fatalf("unexpected counters: %+v", d)
	}

	j1 := d.Jobs[0]
	if j1.ID != "j1" || j1.Price != 2850 || !j1.Booked || !j1.Paid {
		t.Fatalf("unexpected j1: %+v", j1)
	}
	if j1.ReviewRating == nil || *j1.ReviewRating != 5 || j1.InvoiceSent == nil || !*j1.InvoiceSent {
		t.Fatalf("expected j1 financial and review fields set")
	}

	var revenue float64
	for _, j := range d.Jobs {
		revenue += j.Price
	}
	const want = 2850 + 1650 + 4200 + 3750 + 2200 + 5500 + 890 + 3200 + 1850 + 1200 +
		4800 + 2100 + 4500 + 2800 + 1450 + 2850 + 1650 + 2400 + 6200 + 1800
	if want != 57840 {
		t.Fatalf("catalog price sum changed: %d", want)
	}
	if revenue != want {
		t.Fatalf("expected revenue %d, got %v", want, revenue)
	}
}

func TestMockData_ProfilesCarryMatchingCalls(t *testing.T) {
	d := MockData()
	for _, p := range d.Profiles {
		for _, c := range p.Calls {
			if c.PhoneNumber != p.PhoneNumber {
				t.Fatalf("profile %s holds call %s for %s", p.PhoneNumber, c.ID, c.PhoneNumber)
			}
		}
		if len(p.Messages) == 0 {
			t.Fatalf("expected messages for profile %s", p.PhoneNumber)
		}
	}
	if got := len(d.Profiles[0].Calls); got != 2 {
		t.Fatalf("expected 2 listed calls for Robert Chen, got %d", got)
	}
}

func TestMockData_IsDeterministicAndUnshared(t *testing.T) {
	a, err := json.Marshal(MockData())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	mutated := MockData()
	mutated.Jobs[0].Price = 1
	mutated.Jobs[0].CleaningTeam[0] = "Nobody"
	*mutated.Jobs[0].ReviewRating = 1
	mutated.Profiles[0].Messages[0].Content = "changed"

	b, err := json.Marshal(MockData())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("expected identical output across calls")
	}
}

func TestMockData_OptionalFieldsOmittedForScheduledJobs(t *testing.T) {
	d := MockData()
	j17 := d.Jobs[16]
	if j17.ID != "j17" || j17.Status != JobStatusScheduled || j17.Paid {
		t.Fatalf("unexpected j17: %+v", j17)
	}

	raw, err := json.Marshal(j17)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, k := range []string{"paymentDate", "reviewReceived", "reviewRating", "reviewText"} {
		if _, ok := m[k]; ok {
			t.Fatalf("expected %s to be omitted for an unpaid job", k)
		}
	}
	if m["invoiceSent"] != true {
		t.Fatalf("expected invoiceSent true")
	}
}
