// Package mcp exposes the hero catalog to agents over the Model Context
// Protocol.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dom/superheroes-api/internal/domain"
	"github.com/dom/superheroes-api/internal/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

const (
	serverName    = "superheroes-mcp"
	serverVersion = "1.0.0"
)

// NewServer registers the superhero tools on a fresh MCP server.
func NewServer(heroes *service.HeroService, logger *zap.Logger) *mcp.Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(server, GetSuperheroTool(), GetSuperheroHandler(heroes, logger))
	mcp.AddTool(server, CompareSuperheroesTool(), CompareSuperheroesHandler(heroes, logger))
	return server
}

// Serve runs the server on stdio until the client disconnects or ctx ends.
func Serve(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

type GetSuperheroInput struct {
	Name string `json:"name,omitempty" jsonschema:"Name of the superhero (optional)"`
	ID   string `json:"id,omitempty" jsonschema:"ID of the superhero (optional)"`
}

func GetSuperheroTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_superhero",
		Title:       "Get Superhero",
		Description: "Get superhero details by name or id",
	}
}

func GetSuperheroHandler(heroes *service.HeroService, logger *zap.Logger) mcp.ToolHandlerFor[GetSuperheroInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetSuperheroInput) (*mcp.CallToolResult, any, error) {
		hero, err := heroes.FindHero(ctx, domain.HeroID(strings.TrimSpace(input.ID)), input.Name)
		if err != nil {
			logger.Debug("get_superhero miss", zap.String("id", input.ID), zap.String("name", input.Name))
			return nil, nil, domain.ErrHeroNotFound
		}

		return textResult(FormatHeroMarkdown(hero)), nil, nil
	}
}

type CompareSuperheroesInput struct {
	ID1 string `json:"id1" jsonschema:"ID of the first superhero"`
	ID2 string `json:"id2" jsonschema:"ID of the second superhero"`
}

func CompareSuperheroesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "compare_superheroes",
		Title:       "Compare Superheroes",
		Description: "Compare two superheroes' powerstats category by category and report the overall winner",
	}
}

func CompareSuperheroesHandler(heroes *service.HeroService, logger *zap.Logger) mcp.ToolHandlerFor[CompareSuperheroesInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CompareSuperheroesInput) (*mcp.CallToolResult, any, error) {
		idA := domain.HeroID(strings.TrimSpace(input.ID1))
		idB := domain.HeroID(strings.TrimSpace(input.ID2))

		result, err := heroes.Compare(ctx, idA, idB)
		if err != nil {
			var validationErr *domain.ValidationError
			var notFoundErr *domain.NotFoundError
			switch {
			case errors.As(err, &validationErr):
				return nil, nil, fmt.Errorf("invalid comparison: %s", validationErr.Reason)
			case errors.As(err, &notFoundErr):
				return nil, nil, notFoundErr
			}
			logger.Error("compare_superheroes failed", zap.Error(err))
			return nil, nil, errors.New("comparison failed")
		}

		heroA, _ := heroes.GetHero(ctx, result.HeroA)
		heroB, _ := heroes.GetHero(ctx, result.HeroB)
		return textResult(FormatComparison(result, heroA, heroB)), nil, nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
