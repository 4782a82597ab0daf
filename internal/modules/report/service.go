package report

import (
	"errors"
	"strings"

	"gestiondeo/internal/domain"
)

var ErrReporteNoEncontrado = errors.New("reporte no encontrado")

// catalog es el listado fijo de tableros Power BI que embebe el portal. Las
// URLs son los enlaces públicos "publish to web" de cada informe.
var catalog = []domain.Report{
	{
		Slug:        "general",
		Title:       "Panel General",
		Description: "Vista consolidada de todos los proyectos DEO",
		URL:         "https://app.powerbi.com/view?r=eyJrIjoiZ2VuZXJhbC1kZW8ifQ",
	},
	{
		Slug:        "iren-norte",
		Title:       "IREN Norte",
		Description: "Avance físico y contractual del proyecto IREN Norte",
		URL:         "https://app.powerbi.com/view?r=eyJrIjoiaXJlbi1ub3J0ZSJ9",
	},
	{
		Slug:        "iren-sur",
		Title:       "IREN Sur",
		Description: "Avance físico y contractual del proyecto IREN Sur",
		URL:         "https://app.powerbi.com/view?r=eyJrIjoiaXJlbi1zdXIifQ",
	},
	{
		Slug:        "la-caleta",
		Title:       "Hospital La Caleta",
		Description: "Seguimiento del proyecto Hospital La Caleta",
		URL:         "https://app.powerbi.com/view?r=eyJrIjoibGEtY2FsZXRhIn0",
	},
	{
		Slug:        "lanatta",
		Title:       "Villa Señor de los Milagros - Lanatta",
		Description: "Seguimiento del proyecto Lanatta",
		URL:         "https://app.powerbi.com/view?r=eyJrIjoibGFuYXR0YSJ9",
	},
	{
		Slug:        "plan-mil",
		Title:       "Plan Mil",
		Description: "Tablero de control del Plan Mil",
		URL:         "https://app.powerbi.com/view?r=eyJrIjoicGxhbi1taWwifQ",
	},
	{
		Slug:        "clickup",
		Title:       "Tareas ClickUp",
		Description: "Estado de tareas del equipo sincronizado desde ClickUp",
		URL:         "https://app.powerbi.com/view?r=eyJrIjoiY2xpY2t1cC1kZW8ifQ",
	},
	{
		Slug:        "seguimiento-sgd",
		Title:       "Seguimiento SGD",
		Description: "Documentos en trámite en el sistema de gestión documental",
		URL:         "https://app.powerbi.com/view?r=eyJrIjoic2VndWltaWVudG8tc2dkIn0",
	},
	{
		Slug:        "checa",
		Title:       "Puente Checa",
		Description: "Seguimiento del proyecto Puente Checa",
		URL:         "https://app.powerbi.com/view?r=eyJrIjoiY2hlY2EifQ",
	},
	{
		Slug:        "drenaje-piura",
		Title:       "Drenaje Pluvial Piura",
		Description: "Seguimiento del programa de drenaje pluvial de Piura",
		URL:         "https://app.powerbi.com/view?r=eyJrIjoiZHJlbmFqZS1waXVyYSJ9",
	},
}

type Service struct {
	reports []domain.Report
}

func NewService() *Service {
	reports := make([]domain.Report, len(catalog))
	copy(reports, catalog)
	for i := range reports {
		if reports[i].Sandbox == "" {
			reports[i].Sandbox = domain.DefaultSandbox
		}
	}
	return &Service{reports: reports}
}

func (s *Service) List() []domain.Report {
	return s.reports
}

func (s *Service) Get(slug string) (domain.Report, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, r := range s.reports {
		if r.Slug == slug {
			return r, nil
		}
	}
	return domain.Report{}, ErrReporteNoEncontrado
}
