// Package testkit provides canned benchmark cases for tests and demo runs.
// The fixtures mirror the shapes the live harness produces: structured
// algorithm lists, free-text findings, missing confidence values, malformed
// responses, and calls that never returned.
package testkit

import (
	"cryptobench/app"
	"cryptobench/domain/core"
	"cryptobench/domain/score"
	"cryptobench/domain/taxonomy"
)

// FloatPtr returns a pointer to v, for optional confidence fields
func FloatPtr(v float64) *float64 { return &v }

// DemoCases returns a fixed batch of benchmark cases covering the main
// scoring paths. IDs are stable so demo runs are comparable.
func DemoCases() []app.Case {
	return []app.Case{
		{
			ID:   core.CaseID("demo-legacy-source"),
			Name: "legacy crypto source file",
			GroundTruth: score.GroundTruth{
				ExpectedAlgorithms: []string{"RSA", "SHA-1", "MD5", "SEED"},
				ExpectedCategories: []taxonomy.Category{
					taxonomy.CategoryShorVulnerable,
					taxonomy.CategoryGroverVulnerable,
					taxonomy.CategoryKorean,
				},
				ExpectedDomestic: []string{"SEED"},
				ConfidenceRange:  score.ConfidenceRange{Min: 0.75, Max: 0.95},
			},
			Response: score.Response{
				WellFormed:           true,
				VulnerableAlgorithms: []string{"RSA-1024", "SHA-1", "MD5"},
				Summary:              "Legacy system uses RSA with PKCS#1 v1.5 padding and an obfuscated SEED block cipher.",
				Confidence:           FloatPtr(0.85),
			},
			Success: true,
		},
		{
			ID:   core.CaseID("demo-runtime-trace"),
			Name: "runtime API trace",
			GroundTruth: score.GroundTruth{
				ExpectedAlgorithms: []string{"RSA", "SEED", "ARIA", "MD5"},
				ExpectedCategories: []taxonomy.Category{
					taxonomy.CategoryShorVulnerable,
					taxonomy.CategoryGroverVulnerable,
					taxonomy.CategoryKorean,
				},
				ExpectedDomestic: []string{"SEED", "ARIA"},
				ConfidenceRange:  score.ConfidenceRange{Min: 0.8, Max: 0.95},
			},
			Response: score.Response{
				WellFormed:                  true,
				AlgorithmsDetected:          []string{"RSA-2048", "SEED-128-CBC", "ARIA"},
				QuantumVulnerableAlgorithms: []string{"RSA"},
				Findings: map[string]string{
					"hash_usage": "MD5_Update called 2341 times via libcrypto",
				},
				Confidence: FloatPtr(0.9),
			},
			Success: true,
		},
		{
			ID:   core.CaseID("demo-korean-config"),
			Name: "Korean government crypto config",
			GroundTruth: score.GroundTruth{
				ExpectedAlgorithms: []string{"SEED", "ARIA", "LEA", "RSA", "KCDSA", "MD5", "DES"},
				ExpectedCategories: []taxonomy.Category{
					taxonomy.CategoryShorVulnerable,
					taxonomy.CategoryGroverVulnerable,
					taxonomy.CategoryKorean,
				},
				ExpectedDomestic: []string{"SEED", "ARIA", "LEA", "KCDSA"},
				ConfidenceRange:  score.ConfidenceRange{Min: 0.75, Max: 0.95},
			},
			Response: score.Response{
				WellFormed:           true,
				VulnerableAlgorithms: []string{"SEED", "ARIA-256", "LEA-128", "RSA-2048", "DES"},
				Summary:              "KCDSA certificates enabled; MD5 hash usage detected in audit log.",
				Confidence:           FloatPtr(0.8),
			},
			Success: true,
		},
		{
			ID:   core.CaseID("demo-clean-pqc"),
			Name: "clean post-quantum service",
			GroundTruth: score.GroundTruth{
				ExpectedAlgorithms: []string{},
				ExpectedCategories: []taxonomy.Category{},
				ExpectedDomestic:   []string{},
				ConfidenceRange:    score.ConfidenceRange{Min: 0.7, Max: 1.0},
			},
			Response: score.Response{
				WellFormed: true,
				Summary:    "No quantum-vulnerable primitives found.",
				Confidence: FloatPtr(0.9),
			},
			Success: true,
		},
		{
			ID:   core.CaseID("demo-partial-miss"),
			Name: "partial detection, domestic cipher missed",
			GroundTruth: score.GroundTruth{
				ExpectedAlgorithms: []string{"RSA", "SEED"},
				ExpectedCategories: []taxonomy.Category{
					taxonomy.CategoryShorVulnerable,
					taxonomy.CategoryKorean,
				},
				ExpectedDomestic: []string{"SEED"},
				ConfidenceRange:  score.ConfidenceRange{Min: 0.8, Max: 0.95},
			},
			Response: score.Response{
				WellFormed:           true,
				VulnerableAlgorithms: []string{"RSA"},
				Confidence:           FloatPtr(0.5),
			},
			Success: true,
		},
		{
			ID:   core.CaseID("demo-malformed"),
			Name: "malformed model output",
			GroundTruth: score.GroundTruth{
				ExpectedAlgorithms: []string{"DES", "RC4"},
				ExpectedCategories: []taxonomy.Category{
					taxonomy.CategoryGroverVulnerable,
					taxonomy.CategoryClassicalVulnerable,
				},
				ExpectedDomestic: []string{},
				ConfidenceRange:  score.ConfidenceRange{Min: 0.7, Max: 0.95},
			},
			Response: score.Response{
				WellFormed: false,
				Summary:    "DES and RC4 everywhere", // no credit: structure failed
			},
			Success: true,
		},
		{
			ID:   core.CaseID("demo-call-failed"),
			Name: "provider call never returned",
			GroundTruth: score.GroundTruth{
				ExpectedAlgorithms: []string{"ECDSA"},
				ExpectedCategories: []taxonomy.Category{taxonomy.CategoryShorVulnerable},
				ExpectedDomestic:   []string{},
				ConfidenceRange:    score.ConfidenceRange{Min: 0.7, Max: 0.95},
			},
			Response: score.Response{WellFormed: false},
			Success:  false,
		},
	}
}
