package handler

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"trivia-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

var errInvalidID = errors.New("id must be an integer or a numeric string")

// decodeBody unmarshals the raw request body into out regardless of Content-Type.
// An empty or malformed body is a BadRequest.
func decodeBody(c *fiber.Ctx, out any) error {
	body := c.Body()
	if len(body) == 0 {
		return domain.NewBadRequestError("request body is required")
	}
	if err := c.App().Config().JSONDecoder(body, out); err != nil {
		return domain.NewError(domain.CodeBadRequest, "request body is not valid JSON", err)
	}
	return nil
}

// parseFlexibleID accepts 3 as well as "3".
func parseFlexibleID(raw json.RawMessage) (int64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, errInvalidID
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, errInvalidID
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return n, nil
}

// pageQuery reads ?page=, defaulting to 1 when absent or not a number.
func pageQuery(c *fiber.Ctx) int {
	return domain.NormalizePage(c.QueryInt("page", 1))
}

// idParam reads the :id route parameter. Routes constrain it to integers.
func idParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, domain.NewNotFoundError("invalid id")
	}
	return id, nil
}
