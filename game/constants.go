package game

// Gravity is the vertical deceleration, in blocks per tick squared, that launch velocities are solved
// against. It is tuned to the in-world physics step and must not be changed.
const Gravity = 0.115
