package services

// Services defined in this package:
// - UserService: registration, role assignment and role probes
// - ClassService: class listings and the approval workflow
// - CartService: the student's selected-classes cart
// - PaymentService: payment intents and enrollment completion
// - ReportService: in-process reporting aggregates
