package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/mcp/stream", "MCP streamable HTTP endpoint")
	search := flag.String("search", "", "job_search free text")
	location := flag.String("location", "", "job_search location")
	category := flag.String("category", "", "job_search category")
	jobType := flag.String("type", "", "job_search job type")
	detail := flag.String("job", "", "print job_detail for this id")
	flag.Parse()

	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "jobshop-mcp-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: *endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Fatalf("list tools: %v", err)
	}
	for _, t := range tools.Tools {
		fmt.Printf("- %s: %s\n", t.Name, t.Description)
	}

	if *detail != "" {
		call(ctx, session, "job_detail", map[string]any{"id": *detail})
		return
	}

	call(ctx, session, "job_filters", map[string]any{})
	call(ctx, session, "job_search", map[string]any{
		"search":   *search,
		"location": *location,
		"category": *category,
		"type":     *jobType,
	})
}

func call(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) {
	fmt.Printf("\n%s\n", name)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		log.Printf("%s failed: %v", name, err)
		return
	}
	printResult(result)
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
	if res.StructuredContent != nil {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(res.StructuredContent)
	}
}
