package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
)

const tenantKey contextKey = "tenant"

// TenantRepository интерфейс для разрешения тенанта по slug
type TenantRepository interface {
	GetTenantBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
}

// TenantLogger интерфейс для логирования
type TenantLogger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ResolveTenant разрешает {tenantSlug} из пути в тенанта и кладёт его
// в контекст. Все маршруты ядра тенантные: без валидного slug запрос
// не доходит до handler-ов.
func ResolveTenant(repo TenantRepository, logger TenantLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slug := mux.Vars(r)["tenantSlug"]
			if slug == "" {
				handlers.RespondBadRequest(w, "требуется идентификатор салона в пути")
				return
			}

			tenant, err := repo.GetTenantBySlug(r.Context(), slug)
			if err != nil {
				if errors.Is(err, catalogRepo.ErrTenantNotFound) {
					logger.Warn("ResolveTenant: unknown tenant slug=%q", slug)
					handlers.RespondNotFound(w, "салон не найден")
					return
				}
				logger.Error("ResolveTenant: failed to resolve slug=%q: %v", slug, err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := context.WithValue(r.Context(), tenantKey, tenant)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetTenant возвращает тенанта из контекста
func GetTenant(ctx context.Context) (*domain.Tenant, bool) {
	tenant, ok := ctx.Value(tenantKey).(*domain.Tenant)
	return tenant, ok
}
