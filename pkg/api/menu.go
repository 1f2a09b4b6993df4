package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"fooddelivery/pkg/menu"
	"fooddelivery/pkg/otel"
)

// listMenuHandler lists menu items.
// @Summary List menu
// @Produce json
// @Success 200 {array} menu.Item
// @Router /api/menu [get]
func (a *API) listMenuHandler(w http.ResponseWriter, r *http.Request) {
	_, span := otel.AddSpan(r.Context(), "listMenuHandler")
	defer span.End()

	writeJSON(w, http.StatusOK, a.menu.List())
}

// getMenuItemHandler retrieves a menu item by ID.
// @Summary Get menu item
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} menu.Item
// @Failure 404 {object} errorResponse
// @Router /api/menu/{id} [get]
func (a *API) getMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	_, span := otel.AddSpan(r.Context(), "getMenuItemHandler")
	defer span.End()

	item, err := a.menu.Get(mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgItemNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
