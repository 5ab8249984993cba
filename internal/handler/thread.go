package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forumapi/internal/domain"
	mw "github.com/itchan-dev/forumapi/internal/middleware"
	"github.com/itchan-dev/forumapi/internal/utils"
)

// Bodies only contribute the fields listed here. Ids come from the path and
// the owner from the access token. Title, body and content are passed on untouched.

func (h *Handler) PostThread(w http.ResponseWriter, r *http.Request) {
	body, err := utils.DecodePayload(r.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	payload := domain.Payload{
		"title": body["title"],
		"body":  body["body"],
		"owner": mw.GetUserFromContext(r).Id,
	}

	addedThread, err := h.uc.AddThread.Execute(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, map[string]any{"addedThread": addedThread})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	thread, err := h.uc.GetDetailThread.Execute(r.Context(), domain.Payload{
		"threadId": chi.URLParam(r, "threadId"),
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, map[string]any{"thread": thread})
}

func (h *Handler) PostComment(w http.ResponseWriter, r *http.Request) {
	body, err := utils.DecodePayload(r.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	payload := domain.Payload{
		"threadId": chi.URLParam(r, "threadId"),
		"content":  body["content"],
		"owner":    mw.GetUserFromContext(r).Id,
	}

	addedComment, err := h.uc.AddComment.Execute(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, map[string]any{"addedComment": addedComment})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	err := h.uc.DeleteComment.Execute(r.Context(), domain.Payload{
		"threadId":  chi.URLParam(r, "threadId"),
		"commentId": chi.URLParam(r, "commentId"),
		"owner":     mw.GetUserFromContext(r).Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil)
}

func (h *Handler) PostReply(w http.ResponseWriter, r *http.Request) {
	body, err := utils.DecodePayload(r.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	payload := domain.Payload{
		"threadId":  chi.URLParam(r, "threadId"),
		"commentId": chi.URLParam(r, "commentId"),
		"content":   body["content"],
		"owner":     mw.GetUserFromContext(r).Id,
	}

	addedReply, err := h.uc.AddReply.Execute(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, map[string]any{"addedReply": addedReply})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	err := h.uc.DeleteReply.Execute(r.Context(), domain.Payload{
		"threadId":  chi.URLParam(r, "threadId"),
		"commentId": chi.URLParam(r, "commentId"),
		"replyId":   chi.URLParam(r, "replyId"),
		"owner":     mw.GetUserFromContext(r).Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil)
}

func (h *Handler) PutLike(w http.ResponseWriter, r *http.Request) {
	_, err := h.uc.ToggleLike.Execute(r.Context(), domain.Payload{
		"threadId":  chi.URLParam(r, "threadId"),
		"commentId": chi.URLParam(r, "commentId"),
		"owner":     mw.GetUserFromContext(r).Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil)
}
