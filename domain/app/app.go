package app

const Name = "rudp"
