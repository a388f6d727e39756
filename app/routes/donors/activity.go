package donors

import "sage-backend/app/models"

type DonorActivity struct {
	DonorID      string                 `json:"donor_id"`
	DonorName    string                 `json:"donor_name"`
	TotalBudget  float64                `json:"total_budget"`
	ProjectCount int                    `json:"project_count"`
	Projects     []*models.DonorProject `json:"projects"`
}

type CountryActivity struct {
	Donors      []DonorActivity `json:"donors"`
	TotalBudget float64         `json:"total_budget"`
}

// GroupByDonor accumulates budget and project counts per donor, plus an
// overall total across the matched set. Donor order follows first
// appearance in the input.
func GroupByDonor(projects []*models.DonorProject) CountryActivity {
	activity := CountryActivity{Donors: []DonorActivity{}}
	index := map[string]int{}

	for _, p := range projects {
		i, ok := index[p.DonorID]
		if !ok {
			i = len(activity.Donors)
			index[p.DonorID] = i
			activity.Donors = append(activity.Donors, DonorActivity{
				DonorID:   p.DonorID,
				DonorName: p.Donor.Name,
				Projects:  []*models.DonorProject{},
			})
		}
		activity.Donors[i].TotalBudget += p.TotalBudget
		activity.Donors[i].ProjectCount++
		activity.Donors[i].Projects = append(activity.Donors[i].Projects, p)
		activity.TotalBudget += p.TotalBudget
	}
	return activity
}
