package deploy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/budai-platform/agent-summarizer/pkg/config"
)

// RailwayClient is a minimal client for the Railway GraphQL API used by the
// installer
type RailwayClient struct {
	token        string
	projectID    string
	baseURL      string
	client       *http.Client
	pollInterval time.Duration
}

// NewRailwayClient creates a Railway client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewRailwayClient(cfg *config.RailwayConfig) *RailwayClient {
	var token, projectID string
	if cfg != nil {
		token = cfg.Token
		projectID = cfg.ProjectID
	}
	if token == "" {
		token = os.Getenv("RAILWAY_TOKEN")
	}
	if projectID == "" {
		projectID = os.Getenv("RAILWAY_PROJECT_ID")
	}

	base := os.Getenv("RAILWAY_API_URL")
	if base == "" {
		base = "https://backboard.railway.app/graphql/v2"
	}

	return &RailwayClient{
		token:        token,
		projectID:    projectID,
		baseURL:      base,
		client:       &http.Client{Timeout: 30 * time.Second},
		pollInterval: 5 * time.Second,
	}
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// execute posts a GraphQL request and returns the raw data payload
func (r *RailwayClient) execute(ctx context.Context, query string, variables map[string]interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", r.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+r.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("railway returned status %d", resp.StatusCode)
	}

	var gr graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, err
	}
	if len(gr.Errors) > 0 {
		return nil, fmt.Errorf("railway error: %s", gr.Errors[0].Message)
	}
	return gr.Data, nil
}

// CreateService creates a service in the project and returns its id.
// Creating a service that already exists is treated by Railway as a no-op
// returning the existing id, which keeps the install sequence idempotent.
func (r *RailwayClient) CreateService(ctx context.Context, name, sourceRepo, branch string) (string, error) {
	query := `mutation serviceCreate($input: ServiceCreateInput!) {
		serviceCreate(input: $input) { id }
	}`

	source := map[string]interface{}{}
	if sourceRepo != "" {
		source["repo"] = sourceRepo
	}

	variables := map[string]interface{}{
		"input": map[string]interface{}{
			"projectId": r.projectID,
			"name":      name,
			"branch":    branch,
			"source":    source,
		},
	}

	data, err := r.execute(ctx, query, variables)
	if err != nil {
		return "", fmt.Errorf("create service: %w", err)
	}

	var result struct {
		ServiceCreate struct {
			ID string `json:"id"`
		} `json:"serviceCreate"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("create service: %w", err)
	}
	if result.ServiceCreate.ID == "" {
		return "", fmt.Errorf("create service: empty service id in response")
	}
	return result.ServiceCreate.ID, nil
}

// SetEnvironmentVariables upserts the given variables on a service
func (r *RailwayClient) SetEnvironmentVariables(ctx context.Context, serviceID, environment string, variables map[string]string) error {
	query := `mutation variableCollectionUpsert($input: VariableCollectionUpsertInput!) {
		variableCollectionUpsert(input: $input)
	}`

	vars := map[string]interface{}{
		"input": map[string]interface{}{
			"projectId":   r.projectID,
			"serviceId":   serviceID,
			"environment": environment,
			"variables":   variables,
		},
	}

	if _, err := r.execute(ctx, query, vars); err != nil {
		return fmt.Errorf("set environment variables: %w", err)
	}
	return nil
}

// DeployService triggers a deployment and returns the deployment id
func (r *RailwayClient) DeployService(ctx context.Context, serviceID, environment string) (string, error) {
	query := `mutation serviceInstanceDeploy($serviceId: String!, $environment: String!) {
		serviceInstanceDeploy(serviceId: $serviceId, environment: $environment) { id }
	}`

	variables := map[string]interface{}{
		"serviceId":   serviceID,
		"environment": environment,
	}

	data, err := r.execute(ctx, query, variables)
	if err != nil {
		return "", fmt.Errorf("deploy service: %w", err)
	}

	var result struct {
		ServiceInstanceDeploy struct {
			ID string `json:"id"`
		} `json:"serviceInstanceDeploy"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("deploy service: %w", err)
	}
	if result.ServiceInstanceDeploy.ID == "" {
		return "", fmt.Errorf("deploy service: empty deployment id in response")
	}
	return result.ServiceInstanceDeploy.ID, nil
}

// deploymentStatus fetches the current status of a deployment
func (r *RailwayClient) deploymentStatus(ctx context.Context, deploymentID string) (string, error) {
	query := `query deployment($id: String!) {
		deployment(id: $id) { status }
	}`

	data, err := r.execute(ctx, query, map[string]interface{}{"id": deploymentID})
	if err != nil {
		return "", err
	}

	var result struct {
		Deployment struct {
			Status string `json:"status"`
		} `json:"deployment"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", err
	}
	return result.Deployment.Status, nil
}

// WaitForDeployment polls the deployment until it reports SUCCESS or a
// terminal failure state, backing off between polls up to the given timeout
func (r *RailwayClient) WaitForDeployment(ctx context.Context, deploymentID string, timeout time.Duration) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.pollInterval
	policy.MaxInterval = 6 * r.pollInterval
	policy.MaxElapsedTime = timeout

	operation := func() error {
		status, err := r.deploymentStatus(ctx, deploymentID)
		if err != nil {
			return err
		}
		switch status {
		case "SUCCESS":
			return nil
		case "FAILED", "CRASHED", "REMOVED":
			return backoff.Permanent(fmt.Errorf("deployment ended in state %s", status))
		default:
			return fmt.Errorf("deployment still %s", status)
		}
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return fmt.Errorf("wait for deployment: %w", err)
	}
	return nil
}
