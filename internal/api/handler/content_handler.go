package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/api/metrics"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/domain"
	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/ports"
)

type ContentHandler struct {
	contentService ports.ContentService
}

func NewContentHandler(contentService ports.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

type createAudioRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required,oneof=music podcast meditation nature-sounds affirmations"`
	AudioURL    string   `json:"audioUrl" validate:"required"`
	Duration    int64    `json:"duration" validate:"required,gt=0"`
	Artist      string   `json:"artist,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type createReadingRequest struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Category string   `json:"category" validate:"required,oneof=quotes articles stories poems affirmations"`
	Author   string   `json:"author,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type createYogaRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Category     string   `json:"category" validate:"required,oneof=stretching meditation breathing full-routine"`
	Difficulty   string   `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Duration     int64    `json:"duration,omitempty" validate:"omitempty,gt=0"`
	VideoURL     string   `json:"videoUrl,omitempty"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
	Benefits     []string `json:"benefits,omitempty"`
}

type contentListResponse[T any] struct {
	Content     []T   `json:"content"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Total       int64 `json:"total"`
}

type createContentResponse[T any] struct {
	Message string `json:"message"`
	Content T      `json:"content"`
}

// ListAudio serves the audio catalogue.
//
// @Summary      List audio content
// @Tags         content
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Param        search    query     string  false  "Case-insensitive search over title/description/artist"
// @Param        page      query     int     false  "Page number"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  contentListResponse[domain.AudioContent]
// @Router       /audio [get]
func (h *ContentHandler) ListAudio(c echo.Context) error {
	page, err := h.contentService.ListAudio(c.Request().Context(), listFilter(c))
	if err != nil {
		return err
	}
	metrics.ContentListingsTotal.WithLabelValues("audio").Inc()
	return c.JSON(http.StatusOK, contentListResponse[*domain.AudioContent]{
		Content:     orEmpty(page.Content),
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		Total:       page.Total,
	})
}

// CreateAudio adds an item to the audio catalogue.
//
// @Summary      Create audio content
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAudioRequest  true  "Audio content"
// @Success      201   {object}  createContentResponse[domain.AudioContent]
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /audio [post]
func (h *ContentHandler) CreateAudio(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createAudioRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.contentService.CreateAudio(c.Request().Context(), userID, &domain.AudioContent{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		AudioURL:    req.AudioURL,
		Duration:    req.Duration,
		Artist:      req.Artist,
		Tags:        req.Tags,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, createContentResponse[*domain.AudioContent]{
		Message: "Audio content uploaded successfully",
		Content: created,
	})
}

// ListReading serves the reading catalogue.
//
// @Summary      List reading content
// @Tags         content
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Param        search    query     string  false  "Case-insensitive search over title/content/author"
// @Param        page      query     int     false  "Page number"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  contentListResponse[domain.ReadingContent]
// @Router       /reading [get]
func (h *ContentHandler) ListReading(c echo.Context) error {
	page, err := h.contentService.ListReading(c.Request().Context(), listFilter(c))
	if err != nil {
		return err
	}
	metrics.ContentListingsTotal.WithLabelValues("reading").Inc()
	return c.JSON(http.StatusOK, contentListResponse[*domain.ReadingContent]{
		Content:     orEmpty(page.Content),
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		Total:       page.Total,
	})
}

// CreateReading adds an item to the reading catalogue.
//
// @Summary      Create reading content
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReadingRequest  true  "Reading content"
// @Success      201   {object}  createContentResponse[domain.ReadingContent]
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /reading [post]
func (h *ContentHandler) CreateReading(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createReadingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.contentService.CreateReading(c.Request().Context(), userID, &domain.ReadingContent{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Author:   req.Author,
		Tags:     req.Tags,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, createContentResponse[*domain.ReadingContent]{
		Message: "Reading content created successfully",
		Content: created,
	})
}

// ListYoga serves the yoga catalogue.
//
// @Summary      List yoga content
// @Tags         content
// @Produce      json
// @Param        category    query     string  false  "Filter by category"
// @Param        difficulty  query     string  false  "Filter by difficulty"
// @Param        page        query     int     false  "Page number"
// @Param        limit       query     int     false  "Page size"
// @Success      200         {object}  contentListResponse[domain.YogaContent]
// @Router       /yoga [get]
func (h *ContentHandler) ListYoga(c echo.Context) error {
	filter := listFilter(c)
	filter.Difficulty = c.QueryParam("difficulty")

	page, err := h.contentService.ListYoga(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	metrics.ContentListingsTotal.WithLabelValues("yoga").Inc()
	return c.JSON(http.StatusOK, contentListResponse[*domain.YogaContent]{
		Content:     orEmpty(page.Content),
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		Total:       page.Total,
	})
}

// CreateYoga adds an item to the yoga catalogue.
//
// @Summary      Create yoga content
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createYogaRequest  true  "Yoga content"
// @Success      201   {object}  createContentResponse[domain.YogaContent]
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /yoga [post]
func (h *ContentHandler) CreateYoga(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createYogaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.contentService.CreateYoga(c.Request().Context(), userID, &domain.YogaContent{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Difficulty:   req.Difficulty,
		Duration:     req.Duration,
		VideoURL:     req.VideoURL,
		ImageURL:     req.ImageURL,
		Instructions: req.Instructions,
		Benefits:     req.Benefits,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, createContentResponse[*domain.YogaContent]{
		Message: "Yoga content created successfully",
		Content: created,
	})
}

func listFilter(c echo.Context) ports.ContentFilter {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return ports.ContentFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Page:     page,
		Limit:    limit,
	}
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
