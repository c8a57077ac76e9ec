package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
	authsvc "github.com/heartmarshall/studytrack-backend/internal/service/auth"
	usersvc "github.com/heartmarshall/studytrack-backend/internal/service/user"
	"github.com/heartmarshall/studytrack-backend/pkg/ctxutil"
)

// multipartOverhead covers form boundaries and headers around the file part.
const multipartOverhead = 64 << 10

type authService interface {
	Register(ctx context.Context, input authsvc.RegisterInput) (*authsvc.AuthResult, error)
	Login(ctx context.Context, input authsvc.LoginInput) (*authsvc.AuthResult, error)
}

type profileService interface {
	Me(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input usersvc.UpdateProfileInput) (*domain.User, error)
	UpdateAvatar(ctx context.Context, input usersvc.UploadAvatarInput) (*domain.User, error)
	MaxAvatarBytes() int64
}

// AuthHandler serves registration, login and the caller's own profile.
type AuthHandler struct {
	auth    authService
	profile profileService
	log     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth authService, profile profileService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:    auth,
		profile: profile,
		log:     logger.With("handler", "auth"),
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password *string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
	// AvatarError is set when registration succeeded but the uploaded
	// profile picture was rejected.
	AvatarError string `json:"avatarError,omitempty"`
}

// Register handles POST /api/auth/register. The body is either JSON or a
// multipart form with name, email, password and an optional
// "profile_picture" file.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var (
		req    registerRequest
		avatar *usersvc.UploadAvatarInput
	)
	if isMultipart(r) {
		var upErr *uploadError
		avatar, upErr = h.readAvatar(w, r, false)
		if upErr != nil {
			writeError(w, upErr.status, upErr.message)
			return
		}
		req = registerRequest{
			Name:     r.FormValue("name"),
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
		}
	} else if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.auth.Register(r.Context(), authsvc.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	resp := authResponse{Token: result.AccessToken, User: toUserResponse(result.User)}
	if avatar != nil {
		// The account exists at this point; a bad picture must not undo it.
		ctx := ctxutil.WithUserID(r.Context(), result.User.ID)
		user, err := h.profile.UpdateAvatar(ctx, *avatar)
		if err != nil {
			h.log.WarnContext(r.Context(), "avatar on register rejected",
				slog.String("user_id", result.User.ID.String()),
				slog.String("error", err.Error()))
			resp.AvatarError = avatarErrorMessage(err)
		} else {
			resp.User = toUserResponse(user)
		}
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.auth.Login(r.Context(), authsvc.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: result.AccessToken, User: toUserResponse(result.User)})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.profile.Me(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// UpdateProfile handles PUT /api/auth/update.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.profile.UpdateProfile(r.Context(), usersvc.UpdateProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			writeError(w, http.StatusConflict, "email already in use")
			return
		}
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// UploadAvatar handles POST /api/auth/upload-avatar with a multipart
// "profile_picture" file.
func (h *AuthHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	avatar, upErr := h.readAvatar(w, r, true)
	if upErr != nil {
		writeError(w, upErr.status, upErr.message)
		return
	}

	user, err := h.profile.UpdateAvatar(r.Context(), *avatar)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

type uploadError struct {
	status  int
	message string
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// readAvatar parses the multipart body and reads its "profile_picture" part.
// Without the part it returns nil, or a 400 when required is set.
func (h *AuthHandler) readAvatar(w http.ResponseWriter, r *http.Request, required bool) (*usersvc.UploadAvatarInput, *uploadError) {
	maxBytes := h.profile.MaxAvatarBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

	if err := r.ParseMultipartForm(maxBytes + multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &uploadError{http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds %d bytes", maxBytes)}
		}
		return nil, &uploadError{http.StatusBadRequest, "invalid multipart form"}
	}

	file, header, err := r.FormFile("profile_picture")
	if errors.Is(err, http.ErrMissingFile) && !required {
		return nil, nil
	}
	if err != nil {
		return nil, &uploadError{http.StatusBadRequest, "profile_picture file is required"}
	}
	defer file.Close()

	// One extra byte lets the service detect oversized files.
	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, &uploadError{http.StatusBadRequest, "failed to read uploaded file"}
	}
	return &usersvc.UploadAvatarInput{
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func avatarErrorMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) > 0 {
		return ve.Errors[0].Message
	}
	return "profile picture could not be saved"
}
