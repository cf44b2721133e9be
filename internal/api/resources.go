package api

import (
	"context"
	"encoding/json"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/helpline/internal/errors"
	"github.com/diogo/helpline/internal/models"
)

// FetchResources returns the catalog of external help resources.
// Entries without a name are skipped.
func (c *Client) FetchResources(ctx context.Context) ([]models.Resource, error) {
	data, err := c.do(ctx, "fetch resources", http.MethodGet, models.PathResources, nil)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(data) {
		return nil, apierrors.NewParseError("response is not valid JSON", models.PathResources)
	}

	list := gjson.GetBytes(data, PathResources)
	if !list.IsArray() {
		return nil, apierrors.NewParseError("missing resources array", models.PathResources)
	}

	resources := make([]models.Resource, 0, len(list.Array()))
	for i, item := range list.Array() {
		if item.Get(PathResourceName).String() == "" {
			c.logger.Warn("skipping resource without a name", "index", i)
			continue
		}

		var res models.Resource
		if err := json.Unmarshal([]byte(item.Raw), &res); err != nil {
			c.logger.Warn("skipping malformed resource", "index", i, "error", err)
			continue
		}
		resources = append(resources, res)
	}

	return resources, nil
}
