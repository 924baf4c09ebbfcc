// Package dynamodb stores mystery cases in an Amazon DynamoDB table.
//
// The table is keyed by case id. A global secondary index keyed by the
// published flag and createdAt serves the published listing in descending
// order; the full listing is a paginated scan sorted in memory. EnsureTable
// creates the table for local development and first deployments.
package dynamodb
