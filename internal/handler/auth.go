package handler

import (
	"net/http"

	"github.com/itchan-dev/forumapi/internal/utils"
)

func (h *Handler) PostUser(w http.ResponseWriter, r *http.Request) {
	payload, err := utils.DecodePayload(r.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	utils.SanitizePayload(payload, "fullname")

	addedUser, err := h.uc.AddUser.Execute(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, map[string]any{"addedUser": addedUser})
}

func (h *Handler) PostAuthentication(w http.ResponseWriter, r *http.Request) {
	payload, err := utils.DecodePayload(r.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	auth, err := h.uc.LoginUser.Execute(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, auth)
}

func (h *Handler) PutAuthentication(w http.ResponseWriter, r *http.Request) {
	payload, err := utils.DecodePayload(r.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	accessToken, err := h.uc.RefreshAuthentication.Execute(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, map[string]any{"accessToken": accessToken})
}

func (h *Handler) DeleteAuthentication(w http.ResponseWriter, r *http.Request) {
	payload, err := utils.DecodePayload(r.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	if err := h.uc.LogoutUser.Execute(r.Context(), payload); err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil)
}
