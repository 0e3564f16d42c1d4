package schemagen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackSchemaEcommerceKeywords(t *testing.T) {
	for _, description := range []string{
		"an online shop for sneakers",
		"ECOMMERCE platform",
		"e-commerce storefront",
	} {
		schema := FallbackSchema(description)
		require.Equal(t, "E-Commerce API", schema.Name, "description %q", description)
		assert.Equal(t, []string{"products", "users", "orders"}, schema.ResourceNames())
		require.NoError(t, schema.Validate())
		for _, resource := range schema.Resources {
			assert.NotEmpty(t, resource.Endpoints)
		}
	}
}

func TestFallbackSchemaSocialMedia(t *testing.T) {
	schema := FallbackSchema("social media API with users, posts, and comments")
	require.Equal(t, "Social Media API", schema.Name)
	assert.Equal(t, []string{"users", "posts", "comments"}, schema.ResourceNames())

	var hasCreateComment bool
	for _, ep := range schema.Resources[2].Endpoints {
		if ep.Method == "POST" && ep.Path == "/comments" {
			hasCreateComment = true
		}
	}
	assert.True(t, hasCreateComment, "expected a POST /comments endpoint")
}

func TestFallbackSchemaFoodDelivery(t *testing.T) {
	schema := FallbackSchema("restaurant delivery service")
	require.Equal(t, "Food Delivery API", schema.Name)
	assert.Equal(t, []string{"restaurants", "menus", "orders"}, schema.ResourceNames())
	require.NoError(t, schema.Validate())
}

func TestFallbackSchemaGenericCarriesDescription(t *testing.T) {
	description := "an inventory of rare houseplants"
	schema := FallbackSchema(description)
	require.Equal(t, "Custom API", schema.Name)
	assert.Equal(t, description, schema.Description)
	assert.Equal(t, []string{"items"}, schema.ResourceNames())
	require.NoError(t, schema.Validate())
}

func TestFallbackSchemaFirstMatchWins(t *testing.T) {
	// "shop" appears before the social keywords in the matcher order.
	schema := FallbackSchema("a shop with social features")
	assert.Equal(t, "E-Commerce API", schema.Name)
}
