// Package seed holds the reference data the dashboard starts with.
package seed

import (
	"ukkm-backend/internal/models"
	"ukkm-backend/internal/repositories"
)

// Default returns a fresh copy of the seed collections
func Default() repositories.Seed {
	return repositories.Seed{
		Inspections: Inspections(),
		Samples:     Samples(),
		Seizures:    Seizures(),
		Schedule:    Schedule(),
	}
}

// Schedule is the 2025 takwim of epidemiological weeks
func Schedule() []models.ScheduleWeek {
	return []models.ScheduleWeek{
		{Week: 1, StartDate: "30/12/2024", EndDate: "5/1/2025", Month: 1},
		{Week: 2, StartDate: "6/1/2025", EndDate: "12/1/2025", Month: 1},
		{Week: 3, StartDate: "13/1/2025", EndDate: "19/1/2025", Month: 1},
		{Week: 4, StartDate: "20/1/2025", EndDate: "26/1/2025", Month: 1},
		{Week: 5, StartDate: "27/1/2025", EndDate: "2/2/2025", Month: 2},
		{Week: 6, StartDate: "3/2/2025", EndDate: "9/2/2025", Month: 2},
		{Week: 7, StartDate: "10/2/2025", EndDate: "16/2/2025", Month: 2},
		{Week: 8, StartDate: "17/2/2025", EndDate: "23/2/2025", Month: 2},
		{Week: 48, StartDate: "24/11/2025", EndDate: "30/11/2025", Month: 11},
		{Week: 49, StartDate: "1/12/2025", EndDate: "7/12/2025", Month: 12},
		{Week: 50, StartDate: "8/12/2025", EndDate: "14/12/2025", Month: 12},
		{Week: 51, StartDate: "15/12/2025", EndDate: "21/12/2025", Month: 12},
		{Week: 52, StartDate: "22/12/2025", EndDate: "28/12/2025", Month: 12},
	}
}

func visits(dates ...string) [models.VisitSlots]models.Visit {
	var v [models.VisitSlots]models.Visit
	for i, d := range dates {
		v[i].Date = d
	}
	return v
}

// Inspections are the KPM school canteens scheduled for 2025
func Inspections() []models.Inspection {
	kpm := models.CategorySekolahKPM
	return []models.Inspection{
		{ID: 1, Name: "SK SIK", Category: kpm, Visits: visits("28/4/2025", "2/9/2025")},
		{ID: 2, Name: "SK SIK DALAM", Category: kpm, Visits: visits("16/4/2025")},
		{ID: 3, Name: "SJK(C) CHUNG HWA", Category: kpm, Visits: visits("30/6/2025")},
		{ID: 4, Name: "SK HUJUNG BANDAR", Category: kpm, Visits: visits("19/6/2025", "21/9/2025")},
		{ID: 5, Name: "SK PAYA TERENDAM", Category: kpm, Visits: visits("16/4/2025")},
		{ID: 6, Name: "SK BATU LIMA", Category: kpm, Visits: visits("17/6/2025")},
		{ID: 7, Name: "SK SERI DUSUN", Category: kpm, Visits: visits("25/2/2025", "2/9/2025")},
		{ID: 8, Name: "SK CHEPIR", Category: kpm, Visits: visits("27/5/2025", "13/8/2025")},
		{ID: 9, Name: "SK BATU 8", Category: kpm, Visits: visits("29/4/2025", "21/9/2025")},
		{ID: 10, Name: "SK KOTA AUR", Category: kpm, Visits: visits("28/5/2025", "28/10/25")},
		{ID: 11, Name: "SK GULAU", Category: kpm, Visits: visits("24/6/2025")},
		{ID: 12, Name: "SK AMPANG MUDA", Category: kpm, Visits: visits("28/5/2025", "28/10/2025")},
		{ID: 13, Name: "SK TELOI TUA", Category: kpm, Visits: visits("13/5/2025")},
	}
}

// Samples are the lab samples already dispatched
func Samples() []models.Sample {
	return []models.Sample{
		{
			ID:           1,
			Week:         48,
			Date:         "25/11/2025",
			Time:         "11:20AM",
			FoodType:     "Bebola Ikan",
			AnalysisType: "Alergen Telur",
			Location:     "Pasaraya Kawan Kita",
			Lab:          "MKAK, Sungai Buloh",
			Status:       models.SampleFailed,
			Notes:        "Pos Laju - 26/11/2025",
		},
		{
			ID:           2,
			Week:         49,
			Date:         "1/12/2025",
			Time:         "10:39AM",
			FoodType:     "Bebola Ikan",
			AnalysisType: "Alergen Telur",
			Location:     "Lizyana Frozen",
			Lab:          "MKAK, Sungai Buloh",
			Status:       models.SamplePassed,
			Notes:        "Resample - Pos Laju 1/12/2025",
		},
	}
}

// Seizures are the rampasan records on file
func Seizures() []models.Seizure {
	return []models.Seizure{
		{ID: 4, Date: "3/12/2025", Premise: "Kedai Runcit Ah Seng", Item: "Sos Cili", Quantity: 12, Unit: "Botol", Value: 36.00, Reason: models.ReasonLabel, Act: "Peraturan 11(1)"},
		{ID: 3, Date: "28/11/2025", Premise: "Pasar Mini Sri Aman", Item: "Susu Pekat", Quantity: 20, Unit: "Tin", Value: 60.00, Reason: models.ReasonDamaged, Act: "Seksyen 13(1)"},
		{ID: 2, Date: "26/11/2025", Premise: "Pasaraya Kawan Kita", Item: "Roti Coklat", Quantity: 32, Unit: "Bungkus", Value: 48.00, Reason: models.ReasonExpired, Act: models.DefaultSeizureAct},
		{ID: 1, Date: "25/11/2025", Premise: "Kedai Runcit Ali", Item: "Biskut Kelapa", Quantity: 15, Unit: "Bungkus", Value: 22.50, Reason: models.ReasonExpired, Act: models.DefaultSeizureAct},
	}
}

// StatCategories are the activity targets on the dashboard
func StatCategories() []models.StatCategory {
	return []models.StatCategory{
		{Label: "Persampelan Rutin", Value: 12, Total: 20},
		{Label: "Keracunan Makanan", Value: 0, Total: 5},
		{Label: "Pemeriksaan Kantin KPM", Value: 35, Total: 40},
		{Label: "Pemeriksaan Premis Luar", Value: 15, Total: 30},
		{Label: "Bazar Ramadhan", Value: 50, Total: 50},
	}
}

// Compliance is the premise compliance split (patuh / tidak patuh / tutup)
func Compliance() []models.ComplianceSlice {
	return []models.ComplianceSlice{
		{Name: "Patuh", Value: 85, Tone: models.ToneEmerald},
		{Name: "Tidak Patuh", Value: 10, Tone: models.ToneRed},
		{Name: "Tutup", Value: 5, Tone: models.ToneOrange},
	}
}
