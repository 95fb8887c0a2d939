package store

import (
	"time"

	"github.com/Angiecode225/TerraNobis-sub001/internal/model"
)

// SeedProjects 内置种子项目集合，在持久化槽位缺失或不可解析时作为兜底
func SeedProjects() []model.Project {
	return []model.Project{
		{
			Id:             "1",
			Title:          "Culture de Mil Bio - Thiès",
			Description:    "Projet de culture de mil biologique sur 5 hectares avec techniques ancestrales et modernes combinées.",
			FarmerId:       "farmer1",
			FarmerName:     "Aminata Diallo",
			Location:       "Thiès, Sénégal",
			Culture:        "Mil",
			TargetAmount:   60000,
			CurrentAmount:  45000,
			Duration:       8,
			ExpectedReturn: 20,
			Status:         model.ProjectStatusActive,
			Images: []string{
				"https://images.pexels.com/photos/4021761/pexels-photo-4021761.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=1",
				"https://images.pexels.com/photos/2886937/pexels-photo-2886937.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=1",
			},
			Investors: []model.Investor{
				{Id: "inv1", Name: "Mamadou Sow", Amount: 25000, Percentage: 41.7, InvestedAt: date(2024, 1, 10)},
				{Id: "inv2", Name: "Fatou Ndiaye", Amount: 20000, Percentage: 33.3, InvestedAt: date(2024, 1, 15)},
			},
			Updates: []model.ProjectUpdate{
				{
					Id:          "up1",
					Title:       "Préparation du terrain terminée",
					Description: "Le terrain a été préparé selon les techniques ancestrales avec labour profond.",
					Images:      []string{"https://images.pexels.com/photos/4021761/pexels-photo-4021761.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=1"},
					CreatedAt:   date(2024, 1, 20),
				},
			},
			CreatedAt: date(2024, 1, 5),
		},
		{
			Id:             "2",
			Title:          "Élevage de Poules Pondeuses - Fatick",
			Description:    "Développement d'un élevage moderne de poules pondeuses avec 500 poules et vente d'œufs bio.",
			FarmerId:       "farmer2",
			FarmerName:     "Mamadou Sow",
			Location:       "Fatick, Sénégal",
			Culture:        "Élevage",
			TargetAmount:   80000,
			CurrentAmount:  80000,
			Duration:       12,
			ExpectedReturn: 25,
			Status:         model.ProjectStatusCompleted,
			Images: []string{
				"https://images.pexels.com/photos/1300357/pexels-photo-1300357.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=1",
			},
			Investors: []model.Investor{
				{Id: "inv3", Name: "Aïssatou Ba", Amount: 50000, Percentage: 62.5, InvestedAt: date(2023, 12, 1)},
				{Id: "inv4", Name: "Ousmane Fall", Amount: 30000, Percentage: 37.5, InvestedAt: date(2023, 12, 5)},
			},
			Updates:   []model.ProjectUpdate{},
			CreatedAt: date(2023, 11, 15),
		},
		{
			Id:             "3",
			Title:          "Jardin Maraîcher Biologique - Kaolack",
			Description:    "Création d'un jardin maraîcher de 2 hectares avec production de légumes bio pour la vente locale.",
			FarmerId:       "farmer3",
			FarmerName:     "Fatou Ndiaye",
			Location:       "Kaolack, Sénégal",
			Culture:        "Maraîchage",
			TargetAmount:   40000,
			CurrentAmount:  15000,
			Duration:       6,
			ExpectedReturn: 18,
			Status:         model.ProjectStatusActive,
			Images: []string{
				"https://images.pexels.com/photos/1407305/pexels-photo-1407305.jpeg?auto=compress&cs=tinysrgb&w=400&h=300&dpr=1",
			},
			Investors: []model.Investor{
				{Id: "inv5", Name: "Cheikh Diop", Amount: 15000, Percentage: 37.5, InvestedAt: date(2024, 1, 18)},
			},
			Updates:   []model.ProjectUpdate{},
			CreatedAt: date(2024, 1, 12),
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
