package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/repository"
	"github.com/Amadoujf/nouveauyama/utils"
	"golang.org/x/crypto/bcrypt"
)

// SeedService populates a fresh database with a demo catalog and an admin
// account. Meant for dev and staging environments.
type SeedService struct {
	users    *repository.UserRepository
	products *repository.ProductRepository
}

func NewSeedService(users *repository.UserRepository, products *repository.ProductRepository) *SeedService {
	return &SeedService{users: users, products: products}
}

type SeedReport struct {
	AdminCreated bool `json:"admin_created"`
	Products     int  `json:"products"`
}

func (s *SeedService) Run() (*SeedReport, error) {
	report := &SeedReport{}

	created, err := s.seedAdmin()
	if err != nil {
		return nil, err
	}
	report.AdminCreated = created

	for _, product := range demoProducts() {
		p := product
		if err := s.products.Create(&p); err != nil {
			slog.Warn("failed to seed product", "name", p.Name, "error", err)
			continue
		}
		report.Products++
	}

	return report, nil
}

func (s *SeedService) seedAdmin() (bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash admin password: %w", err)
	}

	hashStr := string(hash)
	admin := &models.User{
		UserID:       utils.GenerateEntityID("user_", 12, false),
		Email:        "admin@yamaplus.sn",
		Name:         "Administrateur YAMA+",
		PasswordHash: &hashStr,
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	}

	if err := s.users.Create(admin); err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func demoProducts() []models.Product {
	original := func(v int64) *int64 { return &v }

	return []models.Product{
		{
			ProductID:        utils.GenerateEntityID("prod_", 12, false),
			Name:             "Réfrigérateur Samsung 350L",
			Description:      "Réfrigérateur deux portes avec technologie No Frost, idéal pour les familles.",
			ShortDescription: "Réfrigérateur No Frost 350L",
			Price:            385000,
			Category:         "electromenager",
			Images:           models.StringList{"https://images.yamaplus.sn/demo/frigo-samsung.jpg"},
			Stock:            12,
			Featured:         true,
		},
		{
			ProductID:        utils.GenerateEntityID("prod_", 12, false),
			Name:             "Smartphone Tecno Spark 20",
			Description:      "Écran 6,6 pouces, 128 Go de stockage, double SIM, batterie 5000 mAh.",
			ShortDescription: "Tecno Spark 20 128Go",
			Price:            89000,
			OriginalPrice:    original(105000),
			Category:         "electronique",
			Images:           models.StringList{"https://images.yamaplus.sn/demo/tecno-spark.jpg"},
			Stock:            40,
			IsNew:            true,
			IsPromo:          true,
		},
		{
			ProductID:        utils.GenerateEntityID("prod_", 12, false),
			Name:             "Boubou brodé homme",
			Description:      "Grand boubou en bazin riche avec broderies artisanales de Dakar.",
			ShortDescription: "Boubou bazin brodé",
			Price:            45000,
			Category:         "mode",
			Images:           models.StringList{"https://images.yamaplus.sn/demo/boubou.jpg"},
			Stock:            25,
		},
		{
			ProductID:        utils.GenerateEntityID("prod_", 12, false),
			Name:             "Ventilateur sur pied Binatone",
			Description:      "Ventilateur 16 pouces, trois vitesses, oscillation automatique.",
			ShortDescription: "Ventilateur 16 pouces",
			Price:            22500,
			OriginalPrice:    original(28000),
			Category:         "electromenager",
			Images:           models.StringList{"https://images.yamaplus.sn/demo/ventilateur.jpg"},
			Stock:            60,
			IsPromo:          true,
		},
		{
			ProductID:        utils.GenerateEntityID("prod_", 12, false),
			Name:             "Service à thé sénégalais",
			Description:      "Théière émaillée et six verres décorés pour l'ataya.",
			ShortDescription: "Service ataya complet",
			Price:            15000,
			Category:         "maison",
			Images:           models.StringList{"https://images.yamaplus.sn/demo/ataya.jpg"},
			Stock:            35,
			Featured:         true,
		},
		{
			ProductID:        utils.GenerateEntityID("prod_", 12, false),
			Name:             "Beurre de karité pur 500g",
			Description:      "Beurre de karité non raffiné, pressé à la main en Casamance.",
			ShortDescription: "Karité pur 500g",
			Price:            6500,
			Category:         "beaute",
			Images:           models.StringList{"https://images.yamaplus.sn/demo/karite.jpg"},
			Stock:            80,
			IsNew:            true,
		},
		{
			ProductID:        utils.GenerateEntityID("prod_", 12, false),
			Name:             "Ballon de football Lions",
			Description:      "Ballon taille 5 aux couleurs des Lions de la Teranga.",
			ShortDescription: "Ballon Lions taille 5",
			Price:            12000,
			Category:         "sport",
			Images:           models.StringList{"https://images.yamaplus.sn/demo/ballon.jpg"},
			Stock:            50,
		},
	}
}
