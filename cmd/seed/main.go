package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	gsheets "google.golang.org/api/sheets/v4"

	"gestiondeo/internal/config"
	"gestiondeo/internal/sheets"
)

// Deja la hoja de cálculo en un estado demo conocido: cabeceras más unos
// registros de ejemplo por pestaña. Pisa todo lo que hubiera antes.
func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.GoogleRefreshToken == "" {
		log.Fatal("GOOGLE_REFRESH_TOKEN is required to seed the spreadsheet")
	}

	ctx := context.Background()
	tokens := sheets.NewTokenStore(sheets.OAuthConfig(cfg), cfg.GoogleRefreshToken)
	svc, err := sheets.NewService(ctx, tokens)
	if err != nil {
		log.Fatal(err)
	}

	tabs := map[string][][]interface{}{
		"Proyectos!A1": {
			{"id", "nombre", "activo", "inicio", "fin", "descripcion"},
			{"1", "IREN Norte", "TRUE", "15/01/2024", "30/12/2025", "Instituto Regional de Enfermedades Neoplásicas - Norte"},
			{"2", "Drenaje Pluvial Piura", "TRUE", "01/03/2024", "", "Programa de drenaje pluvial de Piura"},
			{"3", "Hospital La Caleta", "FALSE", "10/06/2023", "20/12/2024", "Mejoramiento del Hospital La Caleta"},
		},
		"Personas!A1": {
			{"id", "nombre", "apellido", "email", "activo", "rol", "nro_celular", "valor"},
			{"1", "Ana", "Torres", "atorres@anin.gob.pe", "TRUE", "Jefe de Proyecto", "987654321", "8000"},
			{"2", "Luis", "Rojas", "lrojas@anin.gob.pe", "TRUE", "Coordinador BIM", "912345678", "6500"},
			{"3", "Rosa", "Díaz", "rdiaz@anin.gob.pe", "FALSE", "", "955555555", ""},
		},
		"Roles!A1": {
			{"nombre"},
			{"Jefe de Proyecto"},
			{"Coordinador BIM"},
			{"Especialista SIG"},
		},
		"OS!A1": {
			{"id", "personaId", "proyectoId", "tipo", "duracion", "fechaInicio", "fechaFin",
				"entregable1", "entregable2", "entregable3", "entregable4",
				"activa", "valor", "areaCargo", "condicion"},
			{"OS-001", "1", "1", "OS", "90", "01/01/2024", "31/03/2024",
				"31/01/2024", "01/03/2024", "31/03/2024", "",
				"TRUE", "24000", "Oficina de Proyectos", "Locador"},
			{"OS-002", "2", "2", "CAS", "Indeterminado", "01/02/2024", "Indeterminado",
				"", "", "", "",
				"TRUE", "6500", "Oficina BIM", "CAS"},
		},
	}

	for baseRange, rows := range tabs {
		sheet := baseRange[:len(baseRange)-3]
		if _, err := svc.Spreadsheets.Values.Clear(cfg.SpreadsheetID, sheet, &gsheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
			log.Fatalf("clear %s: %v", sheet, err)
		}
		vr := &gsheets.ValueRange{Values: rows}
		if _, err := svc.Spreadsheets.Values.Update(cfg.SpreadsheetID, baseRange, vr).
			ValueInputOption("RAW").Context(ctx).Do(); err != nil {
			log.Fatalf("update %s: %v", baseRange, err)
		}
		log.Printf("seeded %s (%d filas)", sheet, len(rows)-1)
	}

	if pass := os.Getenv("SEED_ADMIN_PASSWORD"); pass != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("ADMIN_PASSWORD_HASH=%s", hash)
	}

	log.Println("seed completado")
}
