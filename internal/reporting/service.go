package reporting

import (
	"errors"
	"math"
	"slices"
	"strings"

	"osiris-dashboard/internal/dashboard"
)

const (
	// CostPerBookedJob is the platform fee charged per booked job.
	CostPerBookedJob = 15
	// MinutesSavedPerJob is the admin time one automated booking replaces.
	MinutesSavedPerJob = 45

	recentActivityLimit = 3
)

var ErrClientNotFound = errors.New("reporting: client not found")

// ROI summarises revenue against platform cost for a snapshot.
func ROI(data dashboard.Data) ROISummary {
	out := ROISummary{IsLiveData: data.IsLiveData}
	for _, j := range data.Jobs {
		out.TotalRevenue += j.Price
		if j.Booked {
			out.BookedJobs++
		}
		if j.Status == dashboard.JobStatusCompleted {
			out.CompletedJobs++
		}
	}

	out.PlatformCost = float64(out.BookedJobs * CostPerBookedJob)
	out.NetGain = out.TotalRevenue - out.PlatformCost
	// Halves round away from zero for either sign.
	if out.PlatformCost > 0 {
		out.Multiplier = math.Round(out.NetGain / out.PlatformCost)
	}
	out.TimeSavedHours = TimeSavedHours(data.Jobs)
	if data.CallsAnswered > 0 {
		out.CloseRate = math.Round(float64(data.JobsBooked) / float64(data.CallsAnswered) * 100)
	}

	recent := SortJobsByDateDesc(data.Jobs)
	if len(recent) > recentActivityLimit {
		recent = recent[:recentActivityLimit]
	}
	out.RecentActivity = recent
	return out
}

// TimeSavedHours rounds the admin time saved by booked jobs to whole hours.
func TimeSavedHours(jobs []dashboard.Job) float64 {
	booked := 0
	for _, j := range jobs {
		if j.Booked {
			booked++
		}
	}
	return math.Round(float64(booked*MinutesSavedPerJob) / 60)
}

// Client collects everything the snapshot holds for one phone number.
func Client(data dashboard.Data, phone string) (ClientSummary, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ClientSummary{}, ErrClientNotFound
	}

	out := ClientSummary{
		PhoneNumber: phone,
		Jobs:        make([]dashboard.Job, 0),
		Calls:       make([]dashboard.Call, 0),
		IsLiveData:  data.IsLiveData,
	}
	for _, j := range data.Jobs {
		if j.PhoneNumber != phone {
			continue
		}
		out.Jobs = append(out.Jobs, j)
		out.Revenue += j.Price
		if j.Paid {
			out.PaidRevenue += j.Price
			out.Payments++
		}
		if j.InvoiceSent != nil && *j.InvoiceSent {
			out.Invoices++
		}
		if j.ReviewReceived != nil && *j.ReviewReceived {
			out.Reviews++
		}
		if out.Name == "" {
			out.Name = j.Client
		}
	}
	for _, c := range data.Calls {
		if c.PhoneNumber == phone {
			out.Calls = append(out.Calls, c)
		}
	}
	for i := range data.Profiles {
		if data.Profiles[i].PhoneNumber == phone {
			p := data.Profiles[i]
			out.Profile = &p
			if out.Name == "" {
				out.Name = p.CallerName
			}
			break
		}
	}

	if len(out.Jobs) == 0 && len(out.Calls) == 0 && out.Profile == nil {
		return ClientSummary{}, ErrClientNotFound
	}
	if out.Name == "" && len(out.Calls) > 0 {
		out.Name = out.Calls[0].CallerName
	}
	return out, nil
}

// JobsByDate returns jobs scheduled on date (YYYY-MM-DD), in input order.
func JobsByDate(jobs []dashboard.Job, date string) []dashboard.Job {
	out := make([]dashboard.Job, 0)
	for _, j := range jobs {
		if j.Date == date {
			out = append(out, j)
		}
	}
	return out
}

// SortJobsByDateDesc returns a copy ordered newest first. Ties keep input order.
func SortJobsByDateDesc(jobs []dashboard.Job) []dashboard.Job {
	out := slices.Clone(jobs)
	if out == nil {
		out = make([]dashboard.Job, 0)
	}
	slices.SortStableFunc(out, func(a, b dashboard.Job) int {
		return strings.Compare(b.Date, a.Date)
	})
	return out
}
