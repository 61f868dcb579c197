package dashboard

// Mock counters pad the totals so the demo dashboard does not look empty. The live
// path does not apply them.
const (
	mockExtraQuotes = 3
	mockExtraCalls  = 15
)

// MockData returns the fixed demonstration dataset served when no store is configured
// or the store fails. Every call builds fresh slices, so callers may mutate the result
// without affecting later calls.
func MockData() Data {
	jobs := mockJobs()
	calls := mockCalls()
	profiles := mockProfiles(calls)

	return Data{
		JobsBooked:        countBooked(jobs),
		QuotesSent:        len(jobs) + mockExtraQuotes,
		CleanersScheduled: countPaid(jobs),
		CallsAnswered:     len(calls) + mockExtraCalls,
		Jobs:              jobs,
		Calls:             calls,
		Profiles:          profiles,
		IsLiveData:        false,
	}
}

func boolPtr(v bool) *bool { return &v }

func intPtr(v int) *int { return &v }

// completedJob fills the fields every finished, invoiced, paid and reviewed job carries.
func completedJob(j Job, invoiceDate, paymentDate string, rating int, review string) Job {
	j.Status = JobStatusCompleted
	j.Booked = true
	j.Paid = true
	j.InvoiceSent = boolPtr(true)
	j.InvoiceDate = invoiceDate
	j.PaymentDate = paymentDate
	j.ReviewReceived = boolPtr(true)
	j.ReviewRating = intPtr(rating)
	j.ReviewText = review
	return j
}

// scheduledJob is booked and invoiced but not yet paid.
func scheduledJob(j Job, invoiceDate string) Job {
	j.Status = JobStatusScheduled
	j.Booked = true
	j.Paid = false
	j.InvoiceSent = boolPtr(true)
	j.InvoiceDate = invoiceDate
	return j
}

func mockJobs() []Job {
	return []Job{
		// December 2025
		completedJob(Job{
			ID: "j1", Title: "Executive Home Deep Clean", Date: "2025-12-02", Client: "Robert Chen",
			CleaningTeam: []string{"Maria", "Luis", "Sofia"}, CallDurationSeconds: 420, Price: 2850, PhoneNumber: "3105551234",
		}, "2025-12-02", "2025-12-03", 5, "Absolutely phenomenal service. Maria and her team transformed our home. Will definitely be using again!"),
		completedJob(Job{
			ID: "j2", Title: "Luxury Condo Turnover", Date: "2025-12-05", Client: "Sarah Kim",
			CleaningTeam: []string{"Alex", "Maria"}, CallDurationSeconds: 300, Price: 1650, PhoneNumber: "4245559876",
		}, "2025-12-05", "2025-12-05", 5, "Perfect timing and impeccable attention to detail. My guests were impressed!"),
		completedJob(Job{
			ID: "j3", Title: "Commercial Office Suite", Date: "2025-12-08", Client: "Westfield Properties",
			CleaningTeam: []string{"Maria", "Luis", "Alex", "Rosa"}, CallDurationSeconds: 540, Price: 4200, PhoneNumber: "8185552233",
		}, "2025-12-08", "2025-12-10", 5, "Professional team, excellent communication. Our tenants are thrilled with the space."),
		completedJob(Job{
			ID: "j4", Title: "Post-Construction Cleanup", Date: "2025-12-10", Client: "Harbor Development",
			CleaningTeam: []string{"Luis", "Carlos", "Miguel"}, CallDurationSeconds: 380, Price: 3750, PhoneNumber: "3104447890",
		}, "2025-12-10", "2025-12-12", 5, "They handled the post-construction mess like pros. Property was move-in ready!"),
		completedJob(Job{
			ID: "j5", Title: "Estate Move-Out Deep Clean", Date: "2025-12-12", Client: "Jennifer Walsh",
			CleaningTeam: []string{"Maria", "Sofia", "Elena"}, CallDurationSeconds: 290, Price: 2200, PhoneNumber: "4248881234",
		}, "2025-12-12", "2025-12-13", 5, "Got my full security deposit back thanks to them. Worth every penny!"),
		completedJob(Job{
			ID: "j6", Title: "Holiday Party Prep - Mansion", Date: "2025-12-15", Client: "The Morrison Family",
			CleaningTeam: []string{"Maria", "Luis", "Alex", "Sofia", "Rosa"}, CallDurationSeconds: 600, Price: 5500, PhoneNumber: "3109992345",
		}, "2025-12-15", "2025-12-15", 5, "Our holiday party was a huge success. The house was absolutely spotless. Thank you!"),
		completedJob(Job{
			ID: "j7", Title: "Airbnb Turnover Package", Date: "2025-12-16", Client: "Premium Stays LLC",
			CleaningTeam: []string{"Alex", "Elena"}, CallDurationSeconds: 180, Price: 890, PhoneNumber: "8187773456",
		}, "2025-12-16", "2025-12-16", 4, "Quick turnaround and great quality. Will use for all our properties."),
		completedJob(Job{
			ID: "j8", Title: "Restaurant Deep Clean", Date: "2025-12-18", Client: "Coastal Kitchen",
			CleaningTeam: []string{"Luis", "Carlos", "Miguel", "Rosa"}, CallDurationSeconds: 420, Price: 3200, PhoneNumber: "3106664567",
		}, "2025-12-18", "2025-12-20", 5, "Kitchen passed health inspection with flying colors. These guys know commercial cleaning!"),
		completedJob(Job{
			ID: "j9", Title: "Medical Office Sanitization", Date: "2025-12-19", Client: "Pacific Health Partners",
			CleaningTeam: []string{"Maria", "Sofia"}, CallDurationSeconds: 350, Price: 1850, PhoneNumber: "4245555678",
		}, "2025-12-19", "2025-12-21", 5, "Medical-grade sanitization done right. Our patients feel safe and comfortable."),
		completedJob(Job{
			ID: "j10", Title: "Penthouse Suite Weekly", Date: "2025-12-20", Client: "David Sterling",
			CleaningTeam: []string{"Maria", "Elena"}, CallDurationSeconds: 240, Price: 1200, PhoneNumber: "3108886789",
		}, "2025-12-20", "2025-12-20", 5, "Consistent excellence every week. Maria is a gem!"),
		completedJob(Job{
			ID: "j11", Title: "Holiday Event Venue Prep", Date: "2025-12-21", Client: "Grand Events LA",
			CleaningTeam: []string{"Luis", "Carlos", "Miguel", "Alex", "Rosa"}, CallDurationSeconds: 480, Price: 4800, PhoneNumber: "8184447890",
		}, "2025-12-21", "2025-12-22", 5, "Event venue was pristine. Our clients were blown away!"),
		completedJob(Job{
			ID: "j12", Title: "Luxury Auto Showroom", Date: "2025-12-22", Client: "Beverly Hills Motors",
			CleaningTeam: []string{"Alex", "Carlos"}, CallDurationSeconds: 320, Price: 2100, PhoneNumber: "3102228901",
		}, "2025-12-22", "2025-12-23", 5, "Showroom floor is gleaming. Customers notice the difference!"),
		completedJob(Job{
			ID: "j13", Title: "New Year Prep - Estate", Date: "2025-12-28", Client: "The Goldstein Residence",
			CleaningTeam: []string{"Maria", "Luis", "Sofia", "Elena"}, CallDurationSeconds: 520, Price: 4500, PhoneNumber: "4249990123",
		}, "2025-12-28", "2025-12-28", 5, "Perfect prep for our New Year celebration. Highly recommend!"),
		completedJob(Job{
			ID: "j14", Title: "Corporate HQ Weekend Clean", Date: "2025-12-29", Client: "TechFlow Industries",
			CleaningTeam: []string{"Luis", "Carlos", "Miguel"}, CallDurationSeconds: 400, Price: 2800, PhoneNumber: "8181112345",
		}, "2025-12-29", "2025-12-30", 5, "Office is spotless for the new year. Great weekend service!"),
		completedJob(Job{
			ID: "j15", Title: "VIP Residence Monthly", Date: "2025-12-30", Client: "Marcus Thompson",
			CleaningTeam: []string{"Maria", "Sofia"}, CallDurationSeconds: 280, Price: 1450, PhoneNumber: "3105554321",
		}, "2025-12-30", "2025-12-30", 5, "Another excellent monthly visit. Consistency is key!"),

		// January 2026
		completedJob(Job{
			ID: "j16", Title: "New Year Deep Clean", Date: "2026-01-02", Client: "Robert Chen",
			CleaningTeam: []string{"Maria", "Luis"}, CallDurationSeconds: 420, Price: 2850, PhoneNumber: "3105551234",
		}, "2026-01-02", "2026-01-02", 5, "Great way to start the new year with a fresh clean home!"),
		scheduledJob(Job{
			ID: "j17", Title: "Premium Condo Service", Date: "2026-01-03", Client: "Sarah Kim",
			CleaningTeam: []string{"Alex"}, CallDurationSeconds: 300, Price: 1650, PhoneNumber: "4245559876",
		}, "2026-01-02"),
		scheduledJob(Job{
			ID: "j18", Title: "Executive Move-Out", Date: "2026-01-05", Client: "Mike Johnson",
			CleaningTeam: []string{"Maria", "Sofia"}, CallDurationSeconds: 180, Price: 2400, PhoneNumber: "8185552233",
		}, "2026-01-03"),
		scheduledJob(Job{
			ID: "j19", Title: "Boutique Hotel Contract", Date: "2026-01-06", Client: "The Avalon Hotel",
			CleaningTeam: []string{"Luis", "Carlos", "Elena"}, CallDurationSeconds: 450, Price: 6200, PhoneNumber: "3107779012",
		}, "2026-01-04"),
		scheduledJob(Job{
			ID: "j20", Title: "Wellness Spa Weekly", Date: "2026-01-07", Client: "Serenity Spa & Wellness",
			CleaningTeam: []string{"Maria", "Rosa"}, CallDurationSeconds: 260, Price: 1800, PhoneNumber: "4243332109",
		}, "2026-01-05"),
	}
}

func recordingURL(id string) string {
	return "https://example.com/recordings/call-" + id + ".mp3"
}

func bookedCall(id, phone, name, date string, seconds int) Call {
	return Call{
		ID:              id,
		PhoneNumber:     phone,
		CallerName:      name,
		Date:            date,
		DurationSeconds: seconds,
		AudioURL:        recordingURL(id),
		Outcome:         CallOutcomeBooked,
	}
}

func mockCalls() []Call {
	return []Call{
		bookedCall("c1", "3105551234", "Robert Chen", "2026-01-01T10:30:00Z", 420),
		bookedCall("c2", "4245559876", "Sarah Kim", "2026-01-02T14:15:00Z", 300),
		bookedCall("c3", "3105551234", "Robert Chen", "2025-12-28T16:45:00Z", 180),
		bookedCall("c4", "8185552233", "Westfield Properties", "2025-12-07T11:20:00Z", 540),
		bookedCall("c5", "4245559876", "Sarah Kim", "2025-12-04T09:00:00Z", 120),
		bookedCall("c6", "3109992345", "The Morrison Family", "2025-12-13T10:00:00Z", 600),
		bookedCall("c7", "3107779012", "The Avalon Hotel", "2026-01-04T15:30:00Z", 450),
		bookedCall("c8", "8184447890", "Grand Events LA", "2025-12-19T11:00:00Z", 480),
		bookedCall("c9", "4249990123", "The Goldstein Residence", "2025-12-26T14:00:00Z", 520),
		bookedCall("c10", "3106664567", "Coastal Kitchen", "2025-12-16T09:30:00Z", 420),
		bookedCall("c11", "4243332109", "Serenity Spa & Wellness", "2026-01-05T16:00:00Z", 260),
		bookedCall("c12", "3102228901", "Beverly Hills Motors", "2025-12-20T13:00:00Z", 320),
	}
}

func callsFor(calls []Call, phone string) []Call {
	out := make([]Call, 0)
	for _, c := range calls {
		if c.PhoneNumber == phone {
			out = append(out, c)
		}
	}
	return out
}

// mockProfiles are curated rather than derived: TotalCalls and LastCallDate are
// literal values and include history that is not in the call list.
func mockProfiles(calls []Call) []CallerProfile {
	return []CallerProfile{
		{
			PhoneNumber:  "3105551234",
			CallerName:   "Robert Chen",
			TotalCalls:   3,
			LastCallDate: "2026-01-01T10:30:00Z",
			Calls:        callsFor(calls, "3105551234"),
			Messages: []Message{
				{Role: RoleClient, Content: "Hi, I need your premium deep cleaning service for my 6-bedroom estate in Bel Air.", Timestamp: "2026-01-01T10:30:00Z"},
				{Role: RoleBot, Content: "Hello Mr. Chen! Wonderful to hear from you again. I can absolutely arrange our executive deep cleaning service. Would you like the same team as last time?", Timestamp: "2026-01-01T10:30:30Z"},
				{Role: RoleClient, Content: "Yes, Maria and her team were excellent. Can we do January 2nd?", Timestamp: "2026-01-01T10:31:00Z"},
				{Role: RoleBusiness, Content: "Perfect! I have Maria, Luis, and Sofia available on January 2nd. For the full estate service, that will be $2,850. Shall I confirm?", Timestamp: "2026-01-01T10:32:00Z"},
				{Role: RoleClient, Content: "Yes, please book it. Same payment method on file.", Timestamp: "2026-01-01T10:32:30Z"},
			},
		},
		{
			PhoneNumber:  "4245559876",
			CallerName:   "Sarah Kim",
			TotalCalls:   2,
			LastCallDate: "2026-01-02T14:15:00Z",
			Calls:        callsFor(calls, "4245559876"),
			Messages: []Message{
				{Role: RoleClient, Content: "I need the luxury condo turnover service again for my downtown penthouse.", Timestamp: "2026-01-02T14:15:00Z"},
				{Role: RoleBot, Content: "Hi Sarah! Great to hear from you. Your penthouse at The Ritz Carlton, correct? When do you need the service?", Timestamp: "2026-01-02T14:15:15Z"},
				{Role: RoleClient, Content: "Yes, that's right. January 3rd before my guests arrive.", Timestamp: "2026-01-02T14:16:00Z"},
				{Role: RoleBusiness, Content: "I have Alex available for January 3rd. The premium condo service is $1,650. Shall I schedule it?", Timestamp: "2026-01-02T14:17:00Z"},
				{Role: RoleClient, Content: "Perfect, book it!", Timestamp: "2026-01-02T14:17:30Z"},
			},
		},
		{
			PhoneNumber:  "8185552233",
			CallerName:   "Westfield Properties",
			TotalCalls:   2,
			LastCallDate: "2026-01-03T11:20:00Z",
			Calls:        callsFor(calls, "8185552233"),
			Messages: []Message{
				{Role: RoleClient, Content: "We need a move-out cleaning for one of our executive rental units. 4 bed, 3 bath.", Timestamp: "2026-01-03T11:20:00Z"},
				{Role: RoleBot, Content: "Hello! I can help with that executive move-out cleaning. When is the property available?", Timestamp: "2026-01-03T11:20:20Z"},
				{Role: RoleClient, Content: "January 5th. We need it spotless for the new tenant showing on the 6th.", Timestamp: "2026-01-03T11:21:00Z"},
				{Role: RoleBusiness, Content: "Understood - we'll make it immaculate. For the executive move-out service, that's $2,400. Maria and Sofia are available.", Timestamp: "2026-01-03T11:22:00Z"},
				{Role: RoleClient, Content: "Book it. Send the invoice to our property management email.", Timestamp: "2026-01-03T11:22:30Z"},
			},
		},
		{
			PhoneNumber:  "3109992345",
			CallerName:   "The Morrison Family",
			TotalCalls:   1,
			LastCallDate: "2025-12-13T10:00:00Z",
			Calls:        callsFor(calls, "3109992345"),
			Messages: []Message{
				{Role: RoleClient, Content: "We're hosting a 200-person holiday party at our estate. Need your best team.", Timestamp: "2025-12-13T10:00:00Z"},
				{Role: RoleBot, Content: "What an exciting event! We'd be honored to prepare your estate. How many square feet are we working with?", Timestamp: "2025-12-13T10:00:30Z"},
				{Role: RoleClient, Content: "About 12,000 sq ft main house plus the guest house and outdoor entertainment areas.", Timestamp: "2025-12-13T10:01:30Z"},
				{Role: RoleBusiness, Content: "For a property of that scale with full event prep, I'll send our A-team - Maria, Luis, Alex, Sofia, and Rosa. The comprehensive package is $5,500.", Timestamp: "2025-12-13T10:02:30Z"},
				{Role: RoleClient, Content: "Worth every penny. December 15th, please.", Timestamp: "2025-12-13T10:03:00Z"},
			},
		},
		{
			PhoneNumber:  "3107779012",
			CallerName:   "The Avalon Hotel",
			TotalCalls:   1,
			LastCallDate: "2026-01-04T15:30:00Z",
			Calls:        callsFor(calls, "3107779012"),
			Messages: []Message{
				{Role: RoleClient, Content: "We're interested in a contract for our boutique hotel. 24 rooms, daily turnover.", Timestamp: "2026-01-04T15:30:00Z"},
				{Role: RoleBot, Content: "Excellent! We'd love to partner with The Avalon. What service frequency are you looking for?", Timestamp: "2026-01-04T15:30:30Z"},
				{Role: RoleClient, Content: "We need 6 days a week coverage, premium service for a luxury property.", Timestamp: "2026-01-04T15:31:30Z"},
				{Role: RoleBusiness, Content: "For a dedicated team and premium boutique hotel service, we can offer a monthly contract at $6,200. That includes priority scheduling and our best staff.", Timestamp: "2026-01-04T15:32:30Z"},
				{Role: RoleClient, Content: "Let's start with January. Send over the contract.", Timestamp: "2026-01-04T15:33:00Z"},
			},
		},
		{
			PhoneNumber:  "4243332109",
			CallerName:   "Serenity Spa & Wellness",
			TotalCalls:   1,
			LastCallDate: "2026-01-05T16:00:00Z",
			Calls:        callsFor(calls, "4243332109"),
			Messages: []Message{
				{Role: RoleClient, Content: "Hi, we need weekly deep sanitization for our wellness spa. Very particular about cleanliness.", Timestamp: "2026-01-05T16:00:00Z"},
				{Role: RoleBot, Content: "Of course! Wellness spaces require meticulous attention. How many treatment rooms and common areas?", Timestamp: "2026-01-05T16:00:30Z"},
				{Role: RoleClient, Content: "8 treatment rooms, sauna, steam room, relaxation lounge, and reception. About 4,000 sq ft total.", Timestamp: "2026-01-05T16:01:30Z"},
				{Role: RoleBusiness, Content: "For a spa of that caliber, our weekly wellness facility service is $1,800. We use all eco-friendly, hypoallergenic products.", Timestamp: "2026-01-05T16:02:30Z"},
				{Role: RoleClient, Content: "That's exactly what we need. Book us for every Tuesday.", Timestamp: "2026-01-05T16:03:00Z"},
			},
		},
	}
}
