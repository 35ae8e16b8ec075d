package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"github.com/sangkips/ownerdesk-api/pkg/export"
)

// GetPeriod reads the period query parameter, defaulting to month
func GetPeriod(c *gin.Context) enum.Period {
	return enum.ParsePeriod(c.Query("period"))
}

// WantsXLSX reports whether the caller asked for a spreadsheet
func WantsXLSX(c *gin.Context) bool {
	return strings.EqualFold(c.Query("format"), "xlsx")
}

// SendXLSX writes the sheets as a downloadable workbook named
// <name>-<date>.xlsx
func SendXLSX(c *gin.Context, name string, sheets ...export.Sheet) error {
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, sheets...); err != nil {
		return err
	}

	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, export.ContentTypeXLSX, buf.Bytes())
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
