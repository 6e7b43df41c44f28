// Package validator runs every check against every pack of every
// configured category.
//
// Categories are processed one at a time, in configuration order. Within a
// category the packs are checked concurrently on an errgroup, optionally
// capped by the concurrency setting. Issues are handed to the reporter as
// soon as a check finds them; complaints are collected per pack and appended
// to the result in the category's listing order once every pack of the
// category is done, so two runs over the same tree produce the same
// complaint list.
//
// A category that cannot be listed aborts the run with a fatal error.
// Anything that goes wrong inside a pack is an issue of that pack.
package validator
