package domain

// MinReviewYear is the earliest year a performance review may be filed for.
const MinReviewYear = 2000
