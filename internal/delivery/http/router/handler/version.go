package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	domainerrors "crm/internal/domain/errors"
)

// headerCustomerVersion carries the customer version on contact removal,
// where If-Match already guards the contact itself.
const headerCustomerVersion = "X-Customer-Version"

// versionFromIfMatch reads the guarded version from the If-Match header.
// The value must be a quoted integer, e.g. `"3"`. A missing header maps to
// 428, a malformed one to 412.
func versionFromIfMatch(c echo.Context) (int, error) {
	return versionFromHeader(c, "If-Match")
}

// versionFromHeader parses a quoted-integer version from the named header.
func versionFromHeader(c echo.Context, name string) (int, error) {
	header := strings.TrimSpace(c.Request().Header.Get(name))
	if header == "" {
		return 0, domainerrors.ErrVersionMissing
	}

	if len(header) < 2 || !strings.HasPrefix(header, `"`) || !strings.HasSuffix(header, `"`) {
		return 0, domainerrors.ErrVersionInvalid.WithDetailsf("got %s", header)
	}

	version, err := strconv.Atoi(header[1 : len(header)-1])
	if err != nil {
		return 0, domainerrors.ErrVersionInvalid.WithDetailsf("got %s", header)
	}

	return version, nil
}

// setETag writes the record version as a quoted ETag.
func setETag(c echo.Context, version int) {
	c.Response().Header().Set("ETag", fmt.Sprintf(`"%d"`, version))
}
