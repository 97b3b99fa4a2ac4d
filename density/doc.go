// SPDX-License-Identifier: MIT

// Package density evaluates the log-densities that drive the Psi
// Metropolis–Hastings step and the simplex transforms they are defined over.
//
// Exposed API:
//   - DirichletLogPdf(x, alpha)            -> log Dir(x | alpha), via log-gamma
//   - LogisticNormalLogPdf(theta, mu, σ²)  -> proposal density on the simplex,
//     diagonal covariance, Jacobian of the additive-logistic transform included
//   - LogisticNormalLogPdfSimplex(psi, mu, σ²) -> same density at a full K-vector,
//     last coordinate read rather than rebuilt from 1 − Σ
//   - Logit / InvLogit                     -> simplex ⇄ R^(K-1), last coordinate as reference
//   - ClampSimplex                         -> floor components at eps and renormalize
//
// Reference versions (ReferenceDirichletLogPdf, ReferenceLogisticNormalLogPdf)
// delegate to gonum's distmv distributions and accept a full covariance; they
// are the differential-test oracle for the closed forms here.
//
// Numeric policy:
//   - Never evaluate Γ(·) directly; only math.Lgamma.
//   - Inputs that would produce NaN/±Inf through a log of a non-positive value
//     are rejected with ErrNumericDomain instead of leaking into a chain.
package density
