package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonhub/booking-api/internal/dto"
	"github.com/salonhub/booking-api/internal/geo"
	"github.com/salonhub/booking-api/internal/httperr"
	"github.com/salonhub/booking-api/internal/httpresp"
	"github.com/salonhub/booking-api/internal/models"
)

type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// --------- Handlers ---------

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := h.db.Order("id ASC").Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Erro ao listar categorias.")
		return
	}

	out := make([]dto.CategoryDTO, 0, len(categories))
	for i := range categories {
		out = append(out, dto.NewCategoryDTO(&categories[i]))
	}

	httpresp.List(c, out)
}

func (h *CatalogHandler) ListHairstyles(c *gin.Context) {
	q := h.db.Preload("Category").Where("active = ?", true)

	// Filtro opcional por categoria. Id desconhecido (ou que nem
	// parseia) devolve lista vazia, não erro.
	if categoryStr := strings.TrimSpace(c.Query("category")); categoryStr != "" {
		categoryID, err := strconv.ParseUint(categoryStr, 10, 64)
		if err != nil {
			httpresp.List(c, []dto.HairstyleDTO{})
			return
		}
		q = q.Where("category_id = ?", categoryID)
	}

	var styles []models.Hairstyle
	if err := q.Order("id ASC").Find(&styles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_hairstyles", "Erro ao listar estilos.")
		return
	}

	out := make([]dto.HairstyleDTO, 0, len(styles))
	for i := range styles {
		out = append(out, dto.NewHairstyleDTO(&styles[i]))
	}

	httpresp.List(c, out)
}

func (h *CatalogHandler) ListSalons(c *gin.Context) {
	q := h.db.Preload("Services.Category").Where("salons.active = ?", true)

	if styleStr := strings.TrimSpace(c.Query("hairstyle")); styleStr != "" {
		styleID, err := strconv.ParseUint(styleStr, 10, 64)
		if err != nil {
			httpresp.List(c, []dto.SalonDTO{})
			return
		}
		q = q.
			Joins("JOIN salon_services ss ON ss.salon_id = salons.id").
			Where("ss.hairstyle_id = ?", styleID)
	}

	var salons []models.Salon
	if err := q.Order("salons.id ASC").Find(&salons).Error; err != nil {
		httperr.Internal(c, "failed_to_list_salons", "Erro ao listar salões.")
		return
	}

	lat, lng, hasOrigin := originFromQuery(c)

	out := make([]dto.SalonDTO, 0, len(salons))
	for i := range salons {
		var distance *float64
		if hasOrigin {
			d := geo.Distance(lat, lng, salons[i].Latitude, salons[i].Longitude)
			distance = &d
		}
		out = append(out, dto.NewSalonDTO(&salons[i], distance))
	}

	// Sem ordenação por distância aqui: quem consome decide.
	httpresp.List(c, out)
}

// --------- Retrieve ---------

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := catalogID(c, "category_not_found", "Categoria não encontrada.")
	if !ok {
		return
	}

	var category models.Category
	if err := h.db.First(&category, id).Error; err != nil {
		httperr.NotFound(c, "category_not_found", "Categoria não encontrada.")
		return
	}

	httpresp.OK(c, dto.NewCategoryDTO(&category))
}

func (h *CatalogHandler) GetHairstyle(c *gin.Context) {
	id, ok := catalogID(c, "hairstyle_not_found", "Estilo não encontrado.")
	if !ok {
		return
	}

	// Mesmo recorte da listagem: estilo inativo não existe para fora.
	var style models.Hairstyle
	err := h.db.Preload("Category").
		Where("active = ?", true).
		First(&style, id).Error
	if err != nil {
		httperr.NotFound(c, "hairstyle_not_found", "Estilo não encontrado.")
		return
	}

	httpresp.OK(c, dto.NewHairstyleDTO(&style))
}

func (h *CatalogHandler) GetSalon(c *gin.Context) {
	id, ok := catalogID(c, "salon_not_found", "Salão não encontrado.")
	if !ok {
		return
	}

	var salon models.Salon
	err := h.db.Preload("Services.Category").
		Where("salons.active = ?", true).
		First(&salon, id).Error
	if err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	var distance *float64
	if lat, lng, hasOrigin := originFromQuery(c); hasOrigin {
		d := geo.Distance(lat, lng, salon.Latitude, salon.Longitude)
		distance = &d
	}

	httpresp.OK(c, dto.NewSalonDTO(&salon, distance))
}

func catalogID(c *gin.Context, code, message string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, code, message)
		return 0, false
	}
	return uint(id), true
}

// originFromQuery só considera a posição do caller quando lat e lng
// chegam juntos e parseiam; caso contrário a distância é omitida.
func originFromQuery(c *gin.Context) (float64, float64, bool) {
	latStr := strings.TrimSpace(c.Query("lat"))
	lngStr := strings.TrimSpace(c.Query("lng"))
	if latStr == "" || lngStr == "" {
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, false
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return 0, 0, false
	}

	return lat, lng, true
}
