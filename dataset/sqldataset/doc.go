/*
Package sqldataset reads and writes datasets on SQL databases,
PostgreSQL or SQLite3.

A dataset is stored in a single table with a REAL column for
every feature, an INTEGER column for the label and an
auto-incremented "id" column that keeps the order of the samples:

	CREATE TABLE IF NOT EXISTS "samples" (
		"age" REAL NOT NULL,
		"balance" REAL NOT NULL,
		"label" INTEGER NOT NULL,
		"id" SERIAL PRIMARY KEY)
*/
package sqldataset
