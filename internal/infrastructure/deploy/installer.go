package deploy

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/budai-platform/agent-summarizer/pkg/config"
)

const deployHealthTimeout = 10 * time.Minute

// Step actions in the deployment plan
const (
	ActionCreateService = "create_railway_service"
	ActionSetVariables  = "set_environment_variables"
	ActionDeploy        = "trigger_deployment"
)

// Step is one declarative unit of the deployment plan
type Step struct {
	ID        string            `json:"id"`
	Action    string            `json:"action"`
	DependsOn []string          `json:"depends_on,omitempty"`
	Params    map[string]string `json:"params,omitempty"`
}

// Plan is the ordered step list applied against the deployment provider
type Plan struct {
	TargetEnv string `json:"target_env"`
	Service   string `json:"service"`
	Steps     []Step `json:"steps"`
}

// Result reports what apply did
type Result struct {
	AppliedSteps []string          `json:"applied_steps"`
	Artifacts    map[string]string `json:"artifacts"`
	Duration     time.Duration     `json:"duration"`
}

// provider is the subset of the Railway API the installer drives
type provider interface {
	CreateService(ctx context.Context, name, sourceRepo, branch string) (string, error)
	SetEnvironmentVariables(ctx context.Context, serviceID, environment string, variables map[string]string) error
	DeployService(ctx context.Context, serviceID, environment string) (string, error)
	WaitForDeployment(ctx context.Context, deploymentID string, timeout time.Duration) error
}

// Installer provisions the summarizer service on the hosting platform
type Installer struct {
	cfg     *config.RailwayConfig
	railway provider
	logger  *zap.Logger
}

// NewInstaller creates an installer bound to a Railway project
func NewInstaller(cfg *config.RailwayConfig, railway provider, logger *zap.Logger) *Installer {
	return &Installer{cfg: cfg, railway: railway, logger: logger}
}

// BuildPlan returns the three-step deployment plan: create the service, set
// its environment variables, trigger a deployment and wait for health
func (i *Installer) BuildPlan() Plan {
	return Plan{
		TargetEnv: i.cfg.Environment,
		Service:   i.cfg.ServiceName,
		Steps: []Step{
			{
				ID:     "railway.create_service",
				Action: ActionCreateService,
				Params: map[string]string{
					"service_name": i.cfg.ServiceName,
					"environment":  i.cfg.Environment,
				},
			},
			{
				ID:        "env.set_variables",
				Action:    ActionSetVariables,
				DependsOn: []string{"railway.create_service"},
				Params: map[string]string{
					"BUDAI_SERVICE_NAME": "agent-summarizer",
					"PORT":               "8002",
				},
			},
			{
				ID:        "railway.deploy",
				Action:    ActionDeploy,
				DependsOn: []string{"env.set_variables"},
				Params: map[string]string{
					"service_name":    i.cfg.ServiceName,
					"wait_for_health": "true",
				},
			},
		},
	}
}

// Apply runs the plan steps in order. The first failing step aborts the run;
// already-applied steps and collected artifacts are reported either way.
func (i *Installer) Apply(ctx context.Context, plan Plan) (Result, error) {
	start := time.Now()
	result := Result{
		AppliedSteps: make([]string, 0, len(plan.Steps)),
		Artifacts:    make(map[string]string),
	}

	for _, step := range plan.Steps {
		i.logger.Info("applying deployment step", zap.String("step", step.ID))

		if err := i.applyStep(ctx, plan, step, result.Artifacts); err != nil {
			result.Duration = time.Since(start)
			return result, fmt.Errorf("step %s: %w", step.ID, err)
		}
		result.AppliedSteps = append(result.AppliedSteps, step.ID)
	}

	result.Duration = time.Since(start)
	return result, nil
}

func (i *Installer) applyStep(ctx context.Context, plan Plan, step Step, artifacts map[string]string) error {
	switch step.Action {
	case ActionCreateService:
		serviceID, err := i.railway.CreateService(ctx, step.Params["service_name"], i.cfg.SourceRepo, i.cfg.Branch)
		if err != nil {
			return err
		}
		artifacts["service_id"] = serviceID
		artifacts["environment"] = plan.TargetEnv
		return nil

	case ActionSetVariables:
		variables := make(map[string]string)
		for key, value := range step.Params {
			variables[key] = value
		}
		return i.railway.SetEnvironmentVariables(ctx, artifacts["service_id"], plan.TargetEnv, variables)

	case ActionDeploy:
		deploymentID, err := i.railway.DeployService(ctx, artifacts["service_id"], plan.TargetEnv)
		if err != nil {
			return err
		}
		artifacts["deployment_id"] = deploymentID

		if step.Params["wait_for_health"] == "true" {
			return i.railway.WaitForDeployment(ctx, deploymentID, deployHealthTimeout)
		}
		return nil

	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
}
