package bench

import "tfbench/internal/domain/bench"

// DefaultScenarios returns the fixed set of benchmark operations. Queries are
// substring matches against Terraform block addresses; RelevantFiles is the
// set of fixture files a tool without symbol search would have to read to
// answer the same question.
func DefaultScenarios() []bench.Scenario {
	return []bench.Scenario{
		{
			Name:          "Find all VPC resources",
			Query:         "aws_vpc",
			RelevantFiles: []string{"main.tf"},
		},
		{
			Name:          "Find all security groups",
			Query:         "security_group",
			RelevantFiles: []string{"main.tf"},
		},
		{
			Name:          "Find all variables",
			Query:         "variable",
			RelevantFiles: []string{"variables.tf"},
		},
		{
			Name:          "Find all outputs",
			Query:         "output",
			RelevantFiles: []string{"outputs.tf"},
		},
		{
			Name:          "Find database-related resources",
			Query:         "db",
			RelevantFiles: []string{"main.tf", "variables.tf", "outputs.tf"},
		},
		{
			Name:          "Find load balancer configuration",
			Query:         "aws_lb",
			RelevantFiles: []string{"main.tf", "outputs.tf"},
		},
		{
			Name:          "Find all AWS instances",
			Query:         "aws_instance",
			RelevantFiles: []string{"main.tf"},
		},
		{
			Name:          "Find Auto Scaling configuration",
			Query:         "autoscaling",
			RelevantFiles: []string{"main.tf", "variables.tf", "outputs.tf"},
		},
		{
			Name:          "Find provider configuration",
			Query:         "provider",
			RelevantFiles: []string{"main.tf"},
		},
		{
			Name:          "Find terraform blocks",
			Query:         "terraform",
			RelevantFiles: []string{"main.tf"},
		},
	}
}
