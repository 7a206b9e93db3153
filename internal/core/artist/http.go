package artist

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/atelier/internal/platform/apperr"
	"github.com/taibuivan/atelier/internal/platform/middleware"
	requestutil "github.com/taibuivan/atelier/internal/platform/request"
	"github.com/taibuivan/atelier/internal/platform/respond"
	"github.com/taibuivan/atelier/internal/platform/sec"
	"github.com/taibuivan/atelier/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the artist registry endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/finder", handler.findArtists)
	router.Get("/{id}", handler.getArtist)
	router.Get("/{id}/versions", handler.listVersions)
	router.Get("/{id}/domains", handler.getDomains)

	// Authenticated
	router.Group(func(memberRoute chi.Router) {
		memberRoute.Use(middleware.RequireRole(sec.RoleMember))

		memberRoute.Patch("/{id}", handler.updateArtist)
		memberRoute.Post("/{id}/revert", handler.revertArtist)

		memberRoute.With(middleware.RequireRole(sec.RoleBuilder)).Post("/", handler.createArtist)

		// Janitor strict only
		memberRoute.Group(func(janitorRoute chi.Router) {
			janitorRoute.Use(middleware.RequireRole(sec.RoleJanitor))

			janitorRoute.Post("/{id}/ban", handler.banArtist)
			janitorRoute.Post("/{id}/unban", handler.unbanArtist)
		})
	})

	return router
}

// artistResponse augments the stored entry with the derived status and
// the notes body held on the companion page.
type artistResponse struct {
	*Artist
	Status string   `json:"status"`
	Notes  string   `json:"notes"`
	URLs   []string `json:"url_array"`
}

func (handler *Handler) respondArtist(writer http.ResponseWriter, request *http.Request, a *Artist, status int) {
	notes, err := handler.service.Notes(request.Context(), a)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, status, artistResponse{
		Artist: a,
		Status: a.Status(),
		Notes:  notes,
		URLs:   a.URLArray(),
	})
}

func artistID(request *http.Request) (int, error) {
	id, err := strconv.Atoi(requestutil.ID(request, "id"))
	if err != nil {
		return 0, apperr.ValidationError("Artist ID must be numeric")
	}
	return id, nil
}

func (handler *Handler) getArtist(writer http.ResponseWriter, request *http.Request) {
	id, err := artistID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	a, err := handler.service.GetArtist(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	handler.respondArtist(writer, request, a, http.StatusOK)
}

func (handler *Handler) createArtist(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	a, err := handler.service.CreateArtist(request.Context(), input, middleware.GetUser(request.Context()))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	handler.respondArtist(writer, request, a, http.StatusCreated)
}

func (handler *Handler) updateArtist(writer http.ResponseWriter, request *http.Request) {
	id, err := artistID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	a, err := handler.service.UpdateArtist(request.Context(), id, input, middleware.GetUser(request.Context()))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	handler.respondArtist(writer, request, a, http.StatusOK)
}

func (handler *Handler) revertArtist(writer http.ResponseWriter, request *http.Request) {
	id, err := artistID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input struct {
		VersionID int `json:"version_id"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	a, err := handler.service.RevertArtist(request.Context(), id, input.VersionID, middleware.GetUser(request.Context()))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	handler.respondArtist(writer, request, a, http.StatusOK)
}

func (handler *Handler) banArtist(writer http.ResponseWriter, request *http.Request) {
	id, err := artistID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.BanArtist(request.Context(), id, middleware.GetUser(request.Context())); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) unbanArtist(writer http.ResponseWriter, request *http.Request) {
	id, err := artistID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UnbanArtist(request.Context(), id, middleware.GetUser(request.Context())); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listVersions(writer http.ResponseWriter, request *http.Request) {
	id, err := artistID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	versions, total, err := handler.service.ListVersions(request.Context(), id, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, versions, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getDomains(writer http.ResponseWriter, request *http.Request) {
	id, err := artistID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	counts, err := handler.service.DomainHistogram(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, counts)
}

func (handler *Handler) findArtists(writer http.ResponseWriter, request *http.Request) {
	candidateURL := request.URL.Query().Get("url")
	if candidateURL == "" {
		respond.Error(writer, request, apperr.ValidationError("Query parameter 'url' is required"))
		return
	}

	artists, err := handler.service.FindArtists(request.Context(), candidateURL)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artists)
}
