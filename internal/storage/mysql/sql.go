package mysql

// Saved itineraries are append-only: plain INSERT, no upsert path.
const insertSavedSQL = `
INSERT INTO saved_itineraries
  (id, owner, destination, duration, budget, document, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
`

const getSavedSQL = `
SELECT id, owner, destination, duration, budget, document, created_at
FROM saved_itineraries
WHERE id = ?
`

// Newest first; aligns with the index on (owner, created_at, id).
const listByOwnerSQL = `
SELECT id, owner, destination, duration, budget, document, created_at
FROM saved_itineraries
WHERE owner = ?
ORDER BY created_at DESC, id DESC
LIMIT ?
`
