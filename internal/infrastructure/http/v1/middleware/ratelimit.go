package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// LoginRateLimit throttles the login endpoint per client IP to slow
// credential stuffing. Backed by an in-memory store.
func LoginRateLimit() gin.HandlerFunc {
	rate, _ := limiter.NewRateFromFormatted("10-M")
	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}
