package ledger

import (
	"time"

	"github.com/Angiecode225/TerraNobis-sub001/internal/model"
)

// SeedInvestments 内置投资台账记录
func SeedInvestments() []model.Investment {
	return []model.Investment{
		{
			Id:                 "1",
			ProjectId:          "1",
			ProjectTitle:       "Culture de Mil Bio - Thiès",
			FarmerName:         "Aminata Diallo",
			Location:           "Thiès, Sénégal",
			Culture:            "Mil Biologique",
			InvestedAmount:     25000,
			TotalProjectAmount: 60000,
			ExpectedReturn:     22,
			Duration:           8,
			Status:             model.ProjectStatusActive,
			Progress:           75,
			StartDate:          date(2024, 1, 10),
			EndDate:            date(2024, 9, 10),
			Image:              "https://images.pexels.com/photos/4021761/pexels-photo-4021761.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=1",
			Description:        "Projet de culture de mil biologique sur 5 hectares utilisant des techniques ancestrales optimisées par IA.",
			Updates: []string{
				"Plantation terminée avec succès",
				"Première irrigation effectuée",
				"Croissance des plants conforme aux prévisions",
			},
			RiskLevel: model.RiskLevelLow,
			AIScore:   92,
		},
		{
			Id:                 "2",
			ProjectId:          "2",
			ProjectTitle:       "Élevage de Poules Pondeuses - Fatick",
			FarmerName:         "Mamadou Sow",
			Location:           "Fatick, Sénégal",
			Culture:            "Élevage Avicole",
			InvestedAmount:     30000,
			TotalProjectAmount: 80000,
			ExpectedReturn:     28,
			Duration:           12,
			Status:             model.ProjectStatusActive,
			Progress:           60,
			StartDate:          date(2024, 1, 15),
			EndDate:            date(2025, 1, 15),
			Image:              "https://images.pexels.com/photos/1300357/pexels-photo-1300357.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=1",
			Description:        "Développement d'un élevage moderne de 500 poules pondeuses avec vente d'œufs bio sur le marché local.",
			Updates: []string{
				"Construction du poulailler terminée",
				"Arrivée des premières poules",
				"Production d'œufs en cours",
			},
			RiskLevel: model.RiskLevelMedium,
			AIScore:   88,
		},
		{
			Id:                 "3",
			ProjectId:          "3",
			ProjectTitle:       "Jardin Maraîcher - Kaolack",
			FarmerName:         "Fatou Ndiaye",
			Location:           "Kaolack, Sénégal",
			Culture:            "Légumes Divers",
			InvestedAmount:     15000,
			TotalProjectAmount: 40000,
			ExpectedReturn:     18,
			Duration:           6,
			Status:             model.ProjectStatusCompleted,
			Progress:           100,
			StartDate:          date(2023, 7, 1),
			EndDate:            date(2024, 1, 1),
			Image:              "https://images.pexels.com/photos/533280/pexels-photo-533280.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=1",
			Description:        "Création d'un jardin maraîcher bio de 2 hectares avec rotation des cultures et irrigation moderne.",
			Updates: []string{
				"Projet terminé avec succès",
				"Rendement supérieur aux prévisions",
				"Remboursement effectué",
			},
			RiskLevel: model.RiskLevelLow,
			AIScore:   85,
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
