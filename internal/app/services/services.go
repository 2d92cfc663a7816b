// Package services holds the business logic between the HTTP controllers
// and the repositories. Each service depends on narrow store interfaces so
// the logic can be unit-tested against handwritten fakes; the concrete
// pgx-backed repositories satisfy them.
//
// Services defined in this package:
// - AuthService: login, registration, token refresh and the password flows
// - AdminService: admin panel user listing and forced password resets
// - StudentService: student reference data management
// - CompanyService: company reference data management
// - PlacementService: placement CRUD with ownership scoping
// - ReportService: read-only reporting joins
package services
