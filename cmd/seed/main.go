package main

import (
	"log"

	"tallerlima/internal/config"
	"tallerlima/internal/database"
	"tallerlima/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type shopSeed struct {
	name     string
	wtype    domain.WorkshopType
	tags     []string
	district string
	street   string
}

type rectifierSeed struct {
	name     string
	rtype    domain.RectifierType
	tags     []string
	district string
	street   string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Workshop{},
		&domain.EngineRectifier{},
		&domain.Address{},
		&domain.Contact{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	seedSuperAdmin(db)
	seedWorkshops(db)
	seedRectifiers(db)

	log.Println("Seed complete.")
}

func seedSuperAdmin(db *gorm.DB) {
	var existing domain.User
	err := db.Where("email = ?", "oficina@rgvautoparts.com").First(&existing).Error
	if err == nil {
		log.Println("Super admin already exists. Skipping user seed.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	name := "Super Admin"
	admin := domain.User{
		Email:        "oficina@rgvautoparts.com",
		Name:         &name,
		PasswordHash: string(hash),
		Role:         domain.RoleSuperAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("User seed failed:", err)
	}
	log.Println("Super admin created:", admin.Email)
}

func seedWorkshops(db *gorm.DB) {
	var count int64
	db.Model(&domain.Workshop{}).Count(&count)
	if count > 0 {
		log.Println("Workshops already seeded. Skipping.")
		return
	}

	seeds := []shopSeed{
		{"Iza Motors San Martín de Porres", domain.WorkshopMecanico, []string{"mecánica", "mantenimiento", "alineamiento"}, "San Martín de Porres", "Av. Naranjal 159"},
		{"Alineamiento J. Ocaña E.I.R.L.", domain.WorkshopDireccion, []string{"alineamiento", "frenos"}, "La Victoria", "Jr. Hipólito Unanue 936"},
		{"Cavalié Taller Automotriz", domain.WorkshopMecanico, []string{"mecánica general"}, "Lima", "Jr. José Gálvez 1469"},
		{"Bosch Car Service - Cordaez", domain.WorkshopMultimarca, []string{"mecánica", "diagnóstico", "eléctrico"}, "Pueblo Libre", "Av. de la Marina 785"},
		{"BLUEMEC Automotriz", domain.WorkshopMecanico, []string{"mecánica", "frenos"}, "Lima", "Av. Colonial 2320"},
		{"DiagnostiCAR", domain.WorkshopDiagnostico, []string{"scanner", "diagnóstico"}, "Miraflores", "Av. José Pardo 1167"},
		{"Total Car Service", domain.WorkshopMecanico, []string{"mecánica general"}, "Lince", "Av. Paseo de la República 1878"},
		{"GLF Automotriz", domain.WorkshopMecanico, []string{"mecánica general"}, "Magdalena del Mar", "Av. Antonio José de Sucre 558"},
		{"Taller Automotriz Kaisal", domain.WorkshopMecanico, []string{"mecánica general"}, "San Miguel", "Av. La Paz 650"},
		{"Automotriz Lima World", domain.WorkshopMecanico, []string{"mecánica general"}, "Breña", "Av. República de Venezuela 1353"},
	}

	for _, s := range seeds {
		street := s.street
		w := domain.Workshop{
			Name:     s.name,
			Type:     s.wtype,
			Services: s.tags,
		}
		w.Address = &domain.Address{
			Street:   &street,
			District: s.district,
			Province: "Lima",
			Country:  "Perú",
		}
		if err := db.Create(&w).Error; err != nil {
			log.Fatal("Workshop seed failed:", err)
		}
	}
	log.Printf("Seeded %d workshops", len(seeds))
}

func seedRectifiers(db *gorm.DB) {
	var count int64
	db.Model(&domain.EngineRectifier{}).Count(&count)
	if count > 0 {
		log.Println("Rectifiers already seeded. Skipping.")
		return
	}

	seeds := []rectifierSeed{
		{"Rectificaciones Unidas", domain.RectifierRectificadora, []string{"rectificación de culatas", "cigüeñales"}, "La Victoria", "Av. Iquitos 1243"},
		{"Rectificadora El Porvenir", domain.RectifierRectificadora, []string{"rectificación de monoblock"}, "Lima", "Jr. Paruro 1050"},
		{"Torno y Rectificación Paruro", domain.RectifierTorno, []string{"torneado", "bocinas"}, "Cercado de Lima", "Jr. Paruro 880"},
		{"Soldaduras Especiales Breña", domain.RectifierSoldadura, []string{"soldadura de aluminio", "culatas"}, "Breña", "Av. Arica 495"},
	}

	for _, s := range seeds {
		street := s.street
		r := domain.EngineRectifier{
			Name:        s.name,
			Type:        s.rtype,
			Specialties: s.tags,
		}
		r.Address = &domain.Address{
			Street:   &street,
			District: s.district,
			Province: "Lima",
			Country:  "Perú",
		}
		if err := db.Create(&r).Error; err != nil {
			log.Fatal("Rectifier seed failed:", err)
		}
	}
	log.Printf("Seeded %d rectifiers", len(seeds))
}
