package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// RateLimit throttles each client IP to perSecond requests with the
// given burst. The least recently seen clients are forgotten once
// maxClients is reached.
func RateLimit(perSecond float64, burst, maxClients int) gin.HandlerFunc {
	if burst < 1 {
		burst = 1
	}
	if maxClients < 1 {
		maxClients = 1024
	}
	clients, _ := lru.New[string, *rate.Limiter](maxClients)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		lim, ok := clients.Get(ip)
		if !ok {
			lim = rate.NewLimiter(rate.Limit(perSecond), burst)
			clients.Add(ip, lim)
		}
		r := lim.Reserve()
		if d := r.Delay(); d > 0 {
			r.Cancel()
			c.Header("Retry-After", strconv.Itoa(int(d.Round(time.Second)/time.Second)+1))
			abort(c, http.StatusTooManyRequests, "rate_limited", "too many attempts, try again later")
			return
		}
		c.Next()
	}
}
