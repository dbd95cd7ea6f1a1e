package middleware

import (
	"net/http"
	"strings"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Protect validates the bearer token and attaches the authenticated user's
// identity to the request context. Rejects blocked accounts.
func Protect(userRepo repository.UserRepository, config *utils.Config, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			userID, err := utils.ParseToken(parts[1], config.JWT.Secret)
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			oid, err := primitive.ObjectIDFromHex(userID)
			if err != nil {
				logger.Warn("Token carries malformed user ID", zap.String("user_id", userID))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			user, err := userRepo.FindByID(r.Context(), oid)
			if err != nil {
				logger.Error("Failed to load user for token",
					zap.String("user_id", userID),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil {
				logger.Warn("Token for unknown user", zap.String("user_id", userID))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			if user.Status == entity.UserStatusBlocked {
				logger.Warn("Blocked user attempted access", zap.String("user_id", userID))
				utils.ResponseForbidden(w, "Account is blocked")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID.Hex(), string(user.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin rejects requests whose authenticated role is not admin. Must run
// after Protect.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if role != string(entity.RoleAdmin) {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Non-admin access attempt",
					zap.String("user_id", userID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
