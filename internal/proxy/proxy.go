// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package proxy relays browser paper-search queries to the Semantic Scholar
// API. Browsers cannot call the API directly (CORS, and corporate TLS
// inspection on some machines), so the frontend talks to this handler and
// the handler makes the real call server-side.
package proxy

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/research-hub/internal/upstream"
)

// Fetcher issues one outbound paper-search call. *upstream.Client is the
// production implementation; tests substitute a spy.
type Fetcher interface {
	FetchPapers(ctx context.Context, rawQuery string) (*upstream.Result, error)
}

// Handler returns the fiber handler for the paper-search route. It accepts
// only GET; the inbound query string is passed through to the upstream
// verbatim, with no allow-list, filtering, or re-encoding. Exactly one
// outbound call is made per invocation and its body is relayed unmodified.
func Handler(fetch Fetcher, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Every response is CORS-enabled, success and failure alike.
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")

		if c.Method() != fiber.MethodGet {
			return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
				"message": "Method not allowed",
			})
		}

		rawQuery := string(c.Request().URI().QueryString())

		res, err := fetch.FetchPapers(c.Context(), rawQuery)
		if err != nil {
			status := http.StatusBadGateway
			var ue *upstream.Error
			if errors.As(err, &ue) && ue.Status != 0 {
				status = ue.Status
			}
			log.WithError(err).WithFields(logrus.Fields{
				"status": status,
				"query":  rawQuery,
			}).Warn("paper search failed")
			return c.Status(status).JSON(fiber.Map{
				"message": err.Error(),
				"data":    nil,
			})
		}

		log.WithFields(logrus.Fields{
			"status": res.Status,
			"bytes":  len(res.Body),
		}).Debug("paper search relayed")

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(res.Status).Send(res.Body)
	}
}
