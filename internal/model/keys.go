package model

// BadgeCacheKey is the reserved logical key for the badge cache. The badge
// cache is shared by every account on the same installation, so this key is
// never scoped to the active user.
const BadgeCacheKey = "badgeCache"
